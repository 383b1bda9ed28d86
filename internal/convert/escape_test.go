package convert

import "testing"

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"backslash", `\`, `\textbackslash{}`},
		{"open brace", `{`, `\{`},
		{"close brace", `}`, `\}`},
		{"dollar", `$`, `\$`},
		{"ampersand", `&`, `\&`},
		{"percent", `%`, `\%`},
		{"hash", `#`, `\#`},
		{"caret", `^`, `\textasciicircum{}`},
		{"underscore", `_`, `\_`},
		{"tilde", `~`, `\textasciitilde{}`},
		{"plain text untouched", "hello world", "hello world"},
		{"mixed", `a_b%c`, `a\_b\%c`},
		{"all specials", `\{}$&%#^_~`,
			`\textbackslash{}\{\}\$\&\%\#\textasciicircum{}\_\textasciitilde{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeLaTeX(tt.input); got != tt.expected {
				t.Errorf("EscapeLaTeX(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// The braces introduced by \textbackslash{} and \textasciicircum{} must not
// themselves be escaped in the same pass.
func TestEscapeLaTeXNoDoubleEscape(t *testing.T) {
	got := EscapeLaTeX(`^ and \`)
	want := `\textasciicircum{} and \textbackslash{}`
	if got != want {
		t.Errorf("EscapeLaTeX = %q, want %q", got, want)
	}
}
