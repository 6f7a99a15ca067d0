package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveDanglingReferences(t *testing.T) {
	t.Parallel()

	set := NewSet()

	root := NewObject()
	root.Properties["known"] = NewReference("Transport")
	root.Properties["missing"] = &Node{Kind: Reference, Ref: "Ghost", Description: "A ghost."}
	root.Properties["list"] = &Node{
		Kind:  Array,
		Items: NewReference("Phantom"),
	}
	nullableGhost := NewReference("Spectre")
	nullableGhost.Nullable = true
	root.Properties["maybe"] = nullableGhost
	set.Register("Event", root)

	transport := NewObject()
	transport.Properties["method"] = &Node{Kind: String}
	set.Register("Transport", transport)

	resolved := set.Resolve()

	event, ok := resolved.Component("Event")
	if !ok {
		t.Fatalf("Event component missing after resolve")
	}

	if got := event.Properties["known"]; got.Kind != Reference || got.Ref != "Transport" {
		t.Fatalf("known reference should survive, got %s", got.DebugString())
	}

	missing := event.Properties["missing"]
	want := &Node{Kind: Object, Description: "A ghost."}
	if diff := cmp.Diff(want, missing); diff != "" {
		t.Fatalf("dangling reference (-want +got):\n%s", diff)
	}

	if got := event.Properties["list"].Items; got.Kind != Object || got.Ref != "" {
		t.Fatalf("array item reference not downgraded: %s", got.DebugString())
	}

	maybe := event.Properties["maybe"]
	if maybe.Kind != Object {
		t.Fatalf("nullable dangling reference not downgraded: %s", maybe.DebugString())
	}
	if maybe.Nullable {
		t.Fatalf("downgraded reference should drop its nullability wrapping")
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	set := NewSet()
	root := NewObject()
	root.Properties["ghost"] = NewReference("Ghost")
	set.Register("Event", root)

	_ = set.Resolve()

	if got := root.Properties["ghost"]; got.Kind != Reference || got.Ref != "Ghost" {
		t.Fatalf("input set mutated: %s", got.DebugString())
	}
}

func TestResolveIdempotent(t *testing.T) {
	t.Parallel()

	set := NewSet()
	root := NewObject()
	root.Properties["ghost"] = NewReference("Ghost")
	root.Properties["self"] = NewReference("Event")
	root.Required = []string{"ghost"}
	set.Register("Event", root)

	once := set.Resolve()
	twice := once.Resolve()

	if diff := cmp.Diff(once.Components(), twice.Components()); diff != "" {
		t.Fatalf("Resolve not idempotent (-once +twice):\n%s", diff)
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	root := NewObject()
	root.Properties["list"] = &Node{Kind: Array, Items: &Node{Kind: String}}
	root.Required = []string{"list"}

	cloned := root.Clone()
	cloned.Properties["list"].Items.Kind = Integer
	cloned.Required[0] = "other"

	if root.Properties["list"].Items.Kind != String {
		t.Fatalf("clone shares item nodes with the original")
	}
	if root.Required[0] != "list" {
		t.Fatalf("clone shares the required slice with the original")
	}
}

func TestNodeValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		node    *Node
		wantErr bool
	}{
		{name: "valid object", node: NewObject(), wantErr: false},
		{name: "missing kind", node: &Node{}, wantErr: true},
		{name: "reference without target", node: &Node{Kind: Reference}, wantErr: true},
		{name: "array without items", node: &Node{Kind: Array}, wantErr: true},
		{
			name: "required references unknown property",
			node: &Node{Kind: Object, Required: []string{"ghost"}},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.node.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
