// Package infer maps the free-text type phrases found in documentation
// tables onto structured schema nodes, and applies the array-forcing
// heuristics that correct inconsistently documented list fields.
package infer

// Config carries the heuristic tables used during inference. Keeping them as
// injected data lets tests substitute minimal fixtures and keeps the domain
// allowlists out of the algorithm itself.
type Config struct {
	// ArrayNameHints lists field names that are always arrays in real
	// payloads even when the documented type column disagrees.
	ArrayNameHints map[string]struct{}

	// StringHints, BooleanHints and IntegerHints are ordered substring
	// matchers for the primitive classification pass.
	StringHints  []string
	BooleanHints []string
	IntegerHints []string

	// TimestampHints classify date/time phrases, which map to strings since
	// the source docs use RFC3339 text with varying precision.
	TimestampHints []string
}

// DefaultConfig returns the heuristics tuned for the Twitch EventSub
// reference tables.
func DefaultConfig() Config {
	return Config{
		ArrayNameHints: stringSet(
			"choices",
			"outcomes",
			"fragments",
			"emotes",
			"top_contributions",
			"top_predictors",
			"boundaries",
			"terms_found",
			"shared_ban_channel_ids",
			"types",
			"chat_rules_cited",
			"badges",
			"format",
			"participants",
			"data",
			"terms",
		),
		StringHints:    []string{"string"},
		BooleanHints:   []string{"bool", "boolean"},
		IntegerHints:   []string{"int", "integer", "number", "float", "counter"},
		TimestampHints: []string{"timestamp", "date", "datetime", "rfc3339"},
	}
}

func stringSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
