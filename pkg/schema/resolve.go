package schema

// Resolve returns a copy of the set in which every reference whose target is
// not a registered component has been replaced by a bare object schema. The
// replacement keeps the reference's description and drops its nullability
// wrapping. References to known components pass through untouched, as do all
// other node variants. The pass rebuilds each tree rather than patching nodes
// in place, so no caller ever observes a half-rewritten schema; running it
// twice yields the same result.
func (s *Set) Resolve() *Set {
	known := make(map[string]struct{}, len(s.components))
	for name := range s.components {
		known[name] = struct{}{}
	}

	resolved := NewSet()
	for name, node := range s.components {
		resolved.components[name] = resolveNode(node, known)
	}
	return resolved
}

func resolveNode(n *Node, known map[string]struct{}) *Node {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case Reference:
		if _, ok := known[n.Ref]; ok {
			return n.Clone()
		}
		return &Node{Kind: Object, Description: n.Description}

	case Array:
		out := *n
		out.Items = resolveNode(n.Items, known)
		return &out

	case Object:
		out := *n
		if len(n.Required) > 0 {
			out.Required = append([]string(nil), n.Required...)
		}
		if len(n.Properties) > 0 {
			out.Properties = make(map[string]*Node, len(n.Properties))
			for name, prop := range n.Properties {
				out.Properties[name] = resolveNode(prop, known)
			}
		}
		return &out

	default:
		return n.Clone()
	}
}
