package textnorm

import "testing"

func TestCollapse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "broadcaster_user_id", want: "broadcaster_user_id"},
		{name: "surrounding whitespace", in: "  user_name \t", want: "user_name"},
		{name: "inner runs", in: "The   user's\n\tdisplay  name", want: "The user's display name"},
		{name: "non-breaking spaces", in: "\u00a0\u00a0choices", want: "choices"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collapse(tc.in); got != tc.want {
				t.Fatalf("Collapse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLeadingIndent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want int
	}{
		{name: "no indent", in: "id", want: 0},
		{name: "spaces", in: "   title", want: 3},
		{name: "non-breaking spaces", in: "\u00a0\u00a0\u00a0\u00a0emotes", want: 4},
		{name: "mixed", in: "\u00a0 \u00a0text", want: 3},
		{name: "empty", in: "", want: 0},
		{name: "only trailing spaces", in: "name   ", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LeadingIndent(tc.in); got != tc.want {
				t.Fatalf("LeadingIndent(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestPascalCase(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: "subscription", want: "Subscription"},
		{name: "spaced words", in: "channel update event", want: "ChannelUpdateEvent"},
		{name: "punctuation separators", in: "channel.update", want: "ChannelUpdate"},
		{name: "upper case input", in: "RFC3339 Timestamp", want: "Rfc3339Timestamp"},
		{name: "accented letter folds to base", in: "émote", want: "Emote"},
		{name: "decorated letters fold without duplicating", in: "données", want: "Donnees"},
		{name: "non-latin runes are dropped", in: "日本 event", want: "Event"},
		{name: "digits kept", in: "poll 2", want: "Poll2"},
		{name: "empty", in: "", want: ""},
		{name: "only symbols", in: "—*—", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PascalCase(tc.in); got != tc.want {
				t.Fatalf("PascalCase(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
