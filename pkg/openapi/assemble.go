// Package openapi assembles the inferred schema set into an OpenAPI 3.0
// document, serialises it to YAML, and optionally validates the result.
package openapi

import (
	"github.com/docfold/tablegen/pkg/schema"
)

const refPrefix = "#/components/schemas/"

// Info carries the document metadata emitted under the info block.
type Info struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// DefaultInfo describes the reference page the generator was built for.
func DefaultInfo() Info {
	return Info{
		Title:       "Twitch EventSub Reference",
		Version:     "1.1.0",
		Description: "Best-effort OpenAPI components generated from Twitch EventSub Reference tables.",
	}
}

// Patch injects a reference-typed property into a component when the source
// tables omit a field that is always present in real payloads. It only
// applies when both the component and the target component exist and the
// property is not already declared.
type Patch struct {
	Component   string
	Field       string
	Target      string
	Description string
}

// DefaultPatches returns the known gaps in the reference tables: the
// subscription table omits its transport field even though every webhook and
// websocket example carries one.
func DefaultPatches() []Patch {
	return []Patch{
		{
			Component:   "Subscription",
			Field:       "transport",
			Target:      "Transport",
			Description: "Transport details.",
		},
	}
}

// Assembler converts a schema set into the fixed top-level document shape.
type Assembler struct {
	info    Info
	patches []Patch
}

// NewAssembler constructs an Assembler with the given metadata and patch set.
func NewAssembler(info Info, patches []Patch) *Assembler {
	return &Assembler{info: info, patches: patches}
}

// Document is the fixed output envelope. Struct fields keep the conventional
// top-level ordering in the emitted YAML.
type Document struct {
	OpenAPI    string         `yaml:"openapi"`
	Info       Info           `yaml:"info"`
	Paths      map[string]any `yaml:"paths"`
	Components Components     `yaml:"components"`
}

// Components holds the named schemas of the document.
type Components struct {
	Schemas map[string]any `yaml:"schemas"`
}

// Assemble applies the configured patches and renders every component into
// the document envelope. The input set is not mutated.
func (a *Assembler) Assemble(set *schema.Set) Document {
	patched := set.Clone()
	applyPatches(patched, a.patches)

	schemas := make(map[string]any, patched.Len())
	for name, node := range patched.Components() {
		schemas[name] = renderNode(node)
	}

	return Document{
		OpenAPI:    "3.0.0",
		Info:       a.info,
		Paths:      map[string]any{},
		Components: Components{Schemas: schemas},
	}
}

func applyPatches(set *schema.Set, patches []Patch) {
	for _, patch := range patches {
		component, ok := set.Component(patch.Component)
		if !ok {
			continue
		}
		if _, ok := set.Component(patch.Target); !ok {
			continue
		}
		if component.Properties == nil {
			component.Properties = make(map[string]*schema.Node)
		}
		if _, exists := component.Properties[patch.Field]; exists {
			continue
		}
		injected := schema.NewReference(patch.Target)
		injected.Description = patch.Description
		component.Properties[patch.Field] = injected
	}
}

// renderNode lowers a schema node into the generic YAML tree. Nullable
// references are wrapped in allOf since OpenAPI 3.0 does not allow nullable
// next to $ref.
func renderNode(n *schema.Node) map[string]any {
	switch n.Kind {
	case schema.Reference:
		if n.Nullable {
			out := map[string]any{
				"allOf":    []any{map[string]any{"$ref": refPrefix + n.Ref}},
				"nullable": true,
			}
			if n.Description != "" {
				out["description"] = n.Description
			}
			return out
		}
		out := map[string]any{"$ref": refPrefix + n.Ref}
		if n.Description != "" {
			out["description"] = n.Description
		}
		return out

	case schema.Array:
		out := map[string]any{"type": "array"}
		if n.Items != nil {
			out["items"] = renderNode(n.Items)
		} else {
			out["items"] = map[string]any{"type": "object"}
		}
		decorate(out, n)
		return out

	case schema.Object:
		out := map[string]any{"type": "object"}
		if len(n.Properties) > 0 {
			props := make(map[string]any, len(n.Properties))
			for name, prop := range n.Properties {
				props[name] = renderNode(prop)
			}
			out["properties"] = props
		}
		if len(n.Required) > 0 {
			out["required"] = append([]string(nil), n.Required...)
		}
		decorate(out, n)
		return out

	default:
		out := map[string]any{"type": "object"}
		if n.Kind.IsPrimitive() {
			out["type"] = n.Kind.String()
		}
		decorate(out, n)
		return out
	}
}

func decorate(out map[string]any, n *schema.Node) {
	if n.Nullable {
		out["nullable"] = true
	}
	if n.Description != "" {
		out["description"] = n.Description
	}
}
