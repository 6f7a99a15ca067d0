package openapi

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/docfold/tablegen/pkg/schema"
)

func fixtureSet() *schema.Set {
	set := schema.NewSet()

	subscription := schema.NewObject()
	subscription.Properties["id"] = &schema.Node{Kind: schema.String, Description: "The subscription ID."}
	subscription.Required = []string{"id"}
	set.Register("Subscription", subscription)

	transport := schema.NewObject()
	transport.Properties["method"] = &schema.Node{Kind: schema.String}
	set.Register("Transport", transport)

	return set
}

func TestAssembleEnvelopeShape(t *testing.T) {
	t.Parallel()

	assembler := NewAssembler(DefaultInfo(), nil)
	doc := assembler.Assemble(fixtureSet())

	if doc.OpenAPI != "3.0.0" {
		t.Fatalf("openapi version = %q", doc.OpenAPI)
	}
	if doc.Info.Title != "Twitch EventSub Reference" {
		t.Fatalf("info title = %q", doc.Info.Title)
	}
	if len(doc.Paths) != 0 {
		t.Fatalf("paths should be empty, got %d entries", len(doc.Paths))
	}
	if len(doc.Components.Schemas) != 2 {
		t.Fatalf("expected 2 schemas, got %d", len(doc.Components.Schemas))
	}
}

func TestAssembleAppliesTransportPatch(t *testing.T) {
	t.Parallel()

	assembler := NewAssembler(DefaultInfo(), DefaultPatches())
	doc := assembler.Assemble(fixtureSet())

	subscription, ok := doc.Components.Schemas["Subscription"].(map[string]any)
	if !ok {
		t.Fatalf("Subscription schema missing")
	}
	props := subscription["properties"].(map[string]any)
	transport, ok := props["transport"].(map[string]any)
	if !ok {
		t.Fatalf("transport property not injected")
	}
	want := map[string]any{
		"$ref":        "#/components/schemas/Transport",
		"description": "Transport details.",
	}
	if diff := cmp.Diff(want, transport); diff != "" {
		t.Fatalf("transport patch mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemblePatchSkipsExistingProperty(t *testing.T) {
	t.Parallel()

	set := fixtureSet()
	subscription, _ := set.Component("Subscription")
	subscription.Properties["transport"] = &schema.Node{Kind: schema.String}

	assembler := NewAssembler(DefaultInfo(), DefaultPatches())
	doc := assembler.Assemble(set)

	rendered := doc.Components.Schemas["Subscription"].(map[string]any)
	props := rendered["properties"].(map[string]any)
	transport := props["transport"].(map[string]any)
	if transport["type"] != "string" {
		t.Fatalf("existing transport property was replaced: %v", transport)
	}
}

func TestAssemblePatchRequiresBothComponents(t *testing.T) {
	t.Parallel()

	set := schema.NewSet()
	subscription := schema.NewObject()
	subscription.Properties["id"] = &schema.Node{Kind: schema.String}
	set.Register("Subscription", subscription)

	assembler := NewAssembler(DefaultInfo(), DefaultPatches())
	doc := assembler.Assemble(set)

	rendered := doc.Components.Schemas["Subscription"].(map[string]any)
	props := rendered["properties"].(map[string]any)
	if _, ok := props["transport"]; ok {
		t.Fatalf("patch must not fire without the Transport component")
	}
}

func TestAssembleDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	set := fixtureSet()
	assembler := NewAssembler(DefaultInfo(), DefaultPatches())
	_ = assembler.Assemble(set)

	subscription, _ := set.Component("Subscription")
	if _, ok := subscription.Properties["transport"]; ok {
		t.Fatalf("patch leaked into the input set")
	}
}

func TestRenderNode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		node *schema.Node
		want map[string]any
	}{
		{
			name: "primitive with description",
			node: &schema.Node{Kind: schema.Integer, Description: "A count."},
			want: map[string]any{"type": "integer", "description": "A count."},
		},
		{
			name: "nullable primitive",
			node: &schema.Node{Kind: schema.String, Nullable: true},
			want: map[string]any{"type": "string", "nullable": true},
		},
		{
			name: "array of strings",
			node: &schema.Node{Kind: schema.Array, Items: &schema.Node{Kind: schema.String}},
			want: map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		{
			name: "bare object",
			node: schema.BareObject(),
			want: map[string]any{"type": "object"},
		},
		{
			name: "unset kind degrades to object",
			node: &schema.Node{},
			want: map[string]any{"type": "object"},
		},
		{
			name: "reference",
			node: &schema.Node{Kind: schema.Reference, Ref: "Transport"},
			want: map[string]any{"$ref": "#/components/schemas/Transport"},
		},
		{
			name: "nullable reference wraps in allOf",
			node: &schema.Node{Kind: schema.Reference, Ref: "Reward", Nullable: true, Description: "The reward."},
			want: map[string]any{
				"allOf":       []any{map[string]any{"$ref": "#/components/schemas/Reward"}},
				"nullable":    true,
				"description": "The reward.",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, renderNode(tc.node)); diff != "" {
				t.Fatalf("renderNode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshalEmitsTopLevelOrder(t *testing.T) {
	t.Parallel()

	assembler := NewAssembler(DefaultInfo(), DefaultPatches())
	out, err := Marshal(assembler.Assemble(fixtureSet()))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	text := string(out)
	for _, key := range []string{"openapi: 3.0.0", "info:", "paths:", "components:", "schemas:"} {
		if !strings.Contains(text, key) {
			t.Fatalf("marshalled document missing %q:\n%s", key, text)
		}
	}
	if strings.Index(text, "openapi:") > strings.Index(text, "components:") {
		t.Fatalf("top-level keys out of order:\n%s", text)
	}
}
