package schema

import "sort"

// Set is the collection of named component schemas extracted from one
// document. Component names are unique; re-registering a name overwrites the
// earlier schema.
type Set struct {
	components map[string]*Node
}

// NewSet constructs an empty schema set.
func NewSet() *Set {
	return &Set{components: make(map[string]*Node)}
}

// Register stores a component schema under the given name, replacing any
// earlier schema with the same name.
func (s *Set) Register(name string, node *Node) {
	if name == "" || node == nil {
		return
	}
	if s.components == nil {
		s.components = make(map[string]*Node)
	}
	s.components[name] = node
}

// Component returns the schema registered under name, if any.
func (s *Set) Component(name string) (*Node, bool) {
	node, ok := s.components[name]
	return node, ok
}

// Len reports the number of registered components.
func (s *Set) Len() int {
	return len(s.components)
}

// Names returns the registered component names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.components))
	for name := range s.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Components returns the underlying name → schema mapping. Callers must not
// mutate it while the set is in use; Clone provides an isolated copy.
func (s *Set) Components() map[string]*Node {
	return s.components
}

// Clone creates a deep copy of the set.
func (s *Set) Clone() *Set {
	cloned := NewSet()
	for name, node := range s.components {
		cloned.components[name] = node.Clone()
	}
	return cloned
}
