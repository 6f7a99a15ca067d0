package infer

import (
	"regexp"
	"strings"

	"github.com/docfold/tablegen/internal/textnorm"
	"github.com/docfold/tablegen/pkg/schema"
)

// Engine performs best-effort type inference over documented type phrases.
type Engine struct {
	cfg Config
}

// New constructs an Engine with the given heuristic configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

var parenthetical = regexp.MustCompile(`\([^)]*\)`)

// Infer maps a documented type phrase to a schema node. The field name and
// description provide context for nullability detection; classification
// itself only looks at the type phrase.
func (e *Engine) Infer(rawType, fieldName, desc string) *schema.Node {
	clean := strings.ToLower(textnorm.Collapse(rawType))
	// Remove parentheticals like (or null) before classifying.
	base := strings.TrimSpace(parenthetical.ReplaceAllString(clean, ""))

	nullable := looksNullable(rawType, desc)

	// Arrays: "array", "array of X", "X[]".
	if strings.Contains(base, "[]") || strings.HasPrefix(base, "array") || strings.Contains(base, "array of") {
		node := &schema.Node{Kind: schema.Array, Items: e.inferArrayItem(base)}
		node.Nullable = nullable
		return node
	}

	if node := e.classifyPrimitive(base); node != nil {
		node.Nullable = nullable
		return node
	}

	// Identifiers are conventionally strings even when untyped.
	if strings.Contains(base, "id") {
		return &schema.Node{Kind: schema.String, Nullable: nullable}
	}

	// Otherwise treat the phrase as a reference to another component.
	refName := textnorm.PascalCase(base)
	if refName == "" || strings.EqualFold(refName, "object") {
		return &schema.Node{Kind: schema.Object, Nullable: nullable}
	}
	node := schema.NewReference(refName)
	node.Nullable = nullable
	return node
}

func (e *Engine) inferArrayItem(base string) *schema.Node {
	inner := base
	for _, token := range []string{"array of", "array", "of", "[]"} {
		inner = strings.ReplaceAll(inner, token, "")
	}
	inner = strings.TrimSpace(inner)

	if inner == "" || inner == "object" {
		return schema.BareObject()
	}
	return e.Infer(inner, "", "")
}

func (e *Engine) classifyPrimitive(base string) *schema.Node {
	if containsAny(base, e.cfg.TimestampHints) {
		// RFC3339 text with varying precision; keep it a plain string.
		return &schema.Node{Kind: schema.String}
	}
	if containsAny(base, e.cfg.StringHints) {
		return &schema.Node{Kind: schema.String}
	}
	if containsAny(base, e.cfg.BooleanHints) {
		return &schema.Node{Kind: schema.Boolean}
	}
	if containsAny(base, e.cfg.IntegerHints) {
		// The docs say "integer"/"number" loosely; integer matches most
		// real payloads, and the imprecision is accepted.
		return &schema.Node{Kind: schema.Integer}
	}
	if base == "object" || base == "" {
		return schema.BareObject()
	}
	return nil
}

// ForceArray wraps the node in an array schema when the surrounding text
// strongly implies a list but inference produced something else. Applying it
// to a node that is already an array is a no-op.
func (e *Engine) ForceArray(fieldName, rawType, desc string, node *schema.Node) *schema.Node {
	name := strings.TrimSpace(fieldName)
	if name == "" || node == nil {
		return node
	}
	if node.Kind == schema.Array {
		return node
	}

	descLower := strings.ToLower(desc)
	typeLower := strings.ToLower(rawType)

	_, hinted := e.cfg.ArrayNameHints[name]
	implied := hinted ||
		strings.HasPrefix(descLower, "an array") ||
		strings.Contains(descLower, "an array of") ||
		strings.HasPrefix(typeLower, "array") ||
		strings.Contains(typeLower, "array of") ||
		strings.Contains(typeLower, "[]")
	if !implied {
		return node
	}

	var item *schema.Node
	switch {
	case node.Kind == schema.Reference:
		item = schema.NewReference(node.Ref)
	case node.Kind != schema.Invalid:
		item = node.Clone()
	default:
		item = schema.BareObject()
	}

	return &schema.Node{
		Kind:        schema.Array,
		Items:       item,
		Nullable:    node.Nullable,
		Description: node.Description,
	}
}

func looksNullable(typeText, desc string) bool {
	t := strings.ToLower(typeText)
	d := strings.ToLower(desc)
	return strings.Contains(t, "null") ||
		strings.Contains(t, "(or null") ||
		strings.Contains(d, " null ") ||
		strings.Contains(d, " is null") ||
		strings.Contains(d, "null if")
}

func containsAny(text string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(text, hint) {
			return true
		}
	}
	return false
}
