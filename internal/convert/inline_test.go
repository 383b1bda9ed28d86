package convert

import "testing"

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "code span",
			input:    "`code`",
			expected: `\texttt{code}`,
		},
		{
			name:     "code span content is escaped",
			input:    "use `a_b` here",
			expected: `use \texttt{a\_b} here`,
		},
		{
			name:     "bold",
			input:    "**bold**",
			expected: `\textbf{bold}`,
		},
		{
			name:     "emphasis",
			input:    "*em*",
			expected: `\emph{em}`,
		},
		{
			name:     "bold resolves before italic",
			input:    "***x***",
			expected: `\emph{\textbf{x}}`,
		},
		{
			name:     "mixed markers in one line",
			input:    "see `f()` and **N** or *n*",
			expected: `see \texttt{f()} and \textbf{N} or \emph{n}`,
		},
		{
			name:     "no markers",
			input:    "plain text stays put",
			expected: "plain text stays put",
		},
		{
			name:     "unclosed marker untouched",
			input:    "a * b",
			expected: "a * b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatInline(tt.input); got != tt.expected {
				t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
