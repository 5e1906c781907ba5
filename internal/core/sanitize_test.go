package core

import "testing"

func TestSanitize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean name passes through", "My Show (2023)", "My Show (2023)"},
		{"invalid chars removed", "a<b>c:d\"e/f\\g|h?i*j", "abcdefghij"},
		{"fullwidth question mark dropped", "What？.mkv", "What.mkv"},
		{"fullwidth parens kept as ascii", "Show（2023）", "Show(2023)"},
		{"smart quotes dropped", "It’s “Fine”", "Its Fine"},
		{"em dash folds to hyphen", "A — B", "A - B"},
		{"whitespace collapsed", "a   b    c", "a b c"},
		{"hyphen runs collapsed", "a---b", "a-b"},
		{"leading trailing dots trimmed", "  ..name.. ", "name"},
		{"control chars removed", "a\x01\x02b", "ab"},
		{"empty input falls back", "", "video"},
		{"all invalid falls back", "？？？", "video"},
		{"underscore not allowed", "a_b", "ab"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"My Show (2023)",
		"a<b>c？d！",
		"  spaced   out  ",
		"---",
		"..dots..",
		"Ünïcödé — näme",
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
