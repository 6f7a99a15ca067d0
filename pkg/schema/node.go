package schema

import "fmt"

// Kind enumerates the closed set of schema node variants. The zero value is
// Invalid so construction sites must choose a variant explicitly.
type Kind int

const (
	Invalid Kind = iota
	Object
	Array
	String
	Boolean
	Integer
	Reference
)

// String returns the OpenAPI type keyword for primitive and object kinds.
func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Reference:
		return "reference"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsPrimitive reports whether the kind is a scalar type keyword.
func (k Kind) IsPrimitive() bool {
	return k == String || k == Boolean || k == Integer
}

// Node is one schema in the inferred graph. Which fields are meaningful
// depends on Kind: Ref for references, Items for arrays, Properties and
// Required for objects. Nullable and Description apply to any variant.
type Node struct {
	Kind        Kind
	Ref         string
	Items       *Node
	Properties  map[string]*Node
	Required    []string
	Nullable    bool
	Description string
}

// NewObject returns an object node with an initialised property map, ready to
// receive fields.
func NewObject() *Node {
	return &Node{Kind: Object, Properties: make(map[string]*Node)}
}

// BareObject returns an object node with no declared properties. It renders
// as a plain {type: object} schema.
func BareObject() *Node {
	return &Node{Kind: Object}
}

// NewReference returns a node pointing at the named component.
func NewReference(name string) *Node {
	return &Node{Kind: Reference, Ref: name}
}

// Clone creates a deep copy of the node tree to avoid accidental mutation.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cloned := *n
	if len(n.Required) > 0 {
		cloned.Required = append([]string(nil), n.Required...)
	}
	if n.Items != nil {
		cloned.Items = n.Items.Clone()
	}
	if len(n.Properties) > 0 {
		cloned.Properties = make(map[string]*Node, len(n.Properties))
		for name, prop := range n.Properties {
			cloned.Properties[name] = prop.Clone()
		}
	}
	return &cloned
}

// Validate performs basic sanity checks useful for callers before assembly.
func (n *Node) Validate() error {
	if n == nil {
		return fmt.Errorf("schema: node is nil")
	}
	switch n.Kind {
	case Invalid:
		return fmt.Errorf("schema: node has no kind")
	case Reference:
		if n.Ref == "" {
			return fmt.Errorf("schema: reference node requires a target name")
		}
	case Array:
		if n.Items == nil {
			return fmt.Errorf("schema: array node requires an item schema")
		}
	case Object:
		for _, name := range n.Required {
			if _, ok := n.Properties[name]; !ok {
				return fmt.Errorf("schema: required field %q is not a declared property", name)
			}
		}
	}
	return nil
}

// DebugString renders the node for logging without exposing the full tree.
func (n *Node) DebugString() string {
	if n == nil {
		return "<nil>"
	}
	summary := "kind=" + n.Kind.String()
	if n.Ref != "" {
		summary += ",ref=" + n.Ref
	}
	if len(n.Properties) > 0 {
		summary += fmt.Sprintf(",properties=%d", len(n.Properties))
	}
	if n.Items != nil {
		summary += ",items=true"
	}
	if n.Nullable {
		summary += ",nullable"
	}
	return summary
}
