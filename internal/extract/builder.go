// Package extract reconstructs nested schemas from flat table rows and turns
// table regions into named components.
package extract

import (
	"strings"

	"github.com/docfold/tablegen/internal/infer"
	"github.com/docfold/tablegen/internal/textnorm"
	"github.com/docfold/tablegen/pkg/schema"
)

// fieldRow carries the normalised cells of one data row.
type fieldRow struct {
	indent   int
	name     string
	typeText string
	desc     string
	required bool
}

// frame is one level of the indentation stack: the indent that opened it, the
// object schema collecting fields at that level, and the most recent field
// name (the candidate parent for a deeper row).
type frame struct {
	indent int
	owner  *schema.Node
	last   string
}

// builder consumes rows in document order and assembles one root schema. It
// is an explicit stack machine: indentation increases push a frame anchored
// to the previous field, decreases pop back to the matching level.
type builder struct {
	engine   *infer.Engine
	root     *schema.Node
	stack    []frame
	required []string
}

func newBuilder(engine *infer.Engine) *builder {
	root := schema.NewObject()
	return &builder{
		engine: engine,
		root:   root,
		stack:  []frame{{indent: 0, owner: root}},
	}
}

var separatorMarkers = map[string]struct{}{"-": {}, "—": {}}

// consume processes one raw row. Malformed rows degrade gracefully: they are
// skipped or flattened, never fatal for the table.
func (b *builder) consume(rawName, rawType, rawDesc string, requiredFlag string) {
	name := textnorm.Collapse(rawName)
	if name == "" {
		return
	}
	if _, ok := separatorMarkers[strings.ToLower(name)]; ok {
		return
	}

	row := fieldRow{
		indent:   textnorm.LeadingIndent(rawName),
		name:     name,
		typeText: textnorm.Collapse(rawType),
		desc:     textnorm.Collapse(rawDesc),
		required: isAffirmative(requiredFlag),
	}

	b.adjustStack(row.indent)
	b.insert(row)
}

// adjustStack pops closed levels and, when the indent grew, nests a new frame
// under the previous field at the current level.
func (b *builder) adjustStack(indent int) {
	for len(b.stack) > 0 && indent < b.top().indent {
		b.stack = b.stack[:len(b.stack)-1]
	}
	if len(b.stack) == 0 {
		// Defensive reset; a malformed row must not sink the whole table.
		b.stack = []frame{{indent: 0, owner: b.root}}
	}

	if indent > b.top().indent {
		parent := b.top()
		if parent.last != "" {
			if prop, ok := parent.owner.Properties[parent.last]; ok {
				nested := ensureNestable(prop)
				b.stack = append(b.stack, frame{indent: indent, owner: nested})
			}
		}
		// Without an identifiable parent field the row stays at the current
		// level as a best-effort fallback.
	}
}

func (b *builder) insert(row fieldRow) {
	node := b.engine.Infer(row.typeText, row.name, row.desc)
	node = b.engine.ForceArray(row.name, row.typeText, row.desc, node)
	node.Description = row.desc

	top := b.top()
	if top.owner.Properties == nil {
		top.owner.Properties = make(map[string]*schema.Node)
	}
	top.owner.Properties[row.name] = node
	b.stack[len(b.stack)-1].last = row.name

	if row.required {
		b.required = append(b.required, row.name)
	}
}

// finish returns the assembled root schema, or nil when no usable row was
// seen; empty tables produce no component.
func (b *builder) finish() *schema.Node {
	if len(b.root.Properties) == 0 {
		return nil
	}
	if len(b.required) > 0 {
		// Only root-level properties may appear in the required list; a
		// required flag on a nested row has no root property to point at.
		required := make([]string, 0, len(b.required))
		for _, name := range dedupe(b.required) {
			if _, ok := b.root.Properties[name]; ok {
				required = append(required, name)
			}
		}
		if len(required) > 0 {
			b.root.Required = required
		}
	}
	return b.root
}

func (b *builder) top() frame {
	return b.stack[len(b.stack)-1]
}

// ensureNestable coerces a property schema into something that can hold
// nested fields. Arrays nest under their item type, which is forced to an
// object when it is a primitive or reference; everything else becomes an
// object in place, keeping description and nullability.
func ensureNestable(prop *schema.Node) *schema.Node {
	if prop.Kind == schema.Array {
		if prop.Items == nil || prop.Items.Kind != schema.Object {
			prop.Items = schema.NewObject()
		}
		if prop.Items.Properties == nil {
			prop.Items.Properties = make(map[string]*schema.Node)
		}
		return prop.Items
	}

	prop.Kind = schema.Object
	prop.Ref = ""
	if prop.Properties == nil {
		prop.Properties = make(map[string]*schema.Node)
	}
	return prop
}

func isAffirmative(flag string) bool {
	switch strings.ToLower(textnorm.Collapse(flag)) {
	case "yes", "true", "required":
		return true
	default:
		return false
	}
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
