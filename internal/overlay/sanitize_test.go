package overlay

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain text untouched", "the quick brown fox", "the quick brown fox"},
		{"single quotes dropped", "it's a 'test'", "its a test"},
		{"double quotes dropped", `say "cheese" now`, "say cheese now"},
		{"colon becomes space", "note:this", "note this"},
		{"comma becomes space", "one,two, three", "one two three"},
		{"brackets dropped", "[intro] music", "intro music"},
		{"at sign dropped", "reply @someone", "reply someone"},
		{"channel handle", "@Channel: Name", "Channel Name"},
		{"whitespace collapsed", "a   b\t\tc\nd", "a b c d"},
		{"trimmed", "  padded  ", "padded"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"delimiters only", `'",:[]@`, ""},
		{"backslash survives", `a\b`, `a\b`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.raw); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSanitizeNeverEmitsReservedCharacters(t *testing.T) {
	inputs := []string{
		"plain",
		`'" : , [ ] @ mixed 'into' [text], twice::`,
		"  a,b:c[d]e's\t\"f\"  ",
		",,,,",
		"x", "",
	}
	for _, raw := range inputs {
		got := Sanitize(raw)
		if strings.ContainsAny(got, `'":,[]@`) {
			t.Errorf("Sanitize(%q) = %q still contains a reserved character", raw, got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("Sanitize(%q) = %q contains a run of spaces", raw, got)
		}
		if got != strings.TrimSpace(got) {
			t.Errorf("Sanitize(%q) = %q is not trimmed", raw, got)
		}
	}
}
