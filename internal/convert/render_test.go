package convert

import (
	"strings"
	"testing"
)

// renderToString materializes the fragments of one documentation region.
func renderToString(t *testing.T, content string) string {
	t.Helper()
	c := New()
	st := &scanState{}
	return c.resolve(c.renderDoc(content, st), st)
}

func TestRenderDirectives(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single directive",
			input:    "@brief Adds two numbers",
			expected: "\\brief{Adds two numbers}\n",
		},
		{
			name:     "multi-line content joined with spaces",
			input:    "@brief Line one\ncontinued here",
			expected: "\\brief{Line one continued here}\n",
		},
		{
			name:     "blank line terminates content",
			input:    "@brief Line one\n\ntrailing prose",
			expected: "\\brief{Line one}\n\ntrailing prose",
		},
		{
			name:     "directive terminates previous directive",
			input:    "@param x the input\n@return the result",
			expected: "\\param{x the input}\n\n\\return{the result}\n",
		},
		{
			name:     "endfunc matches before end",
			input:    "@endfunc",
			expected: "\\end{function}{}\n",
		},
		{
			name:     "end directive",
			input:    "@end itemize",
			expected: "\\end{itemize}\n",
		},
		{
			name:     "subsubsection matches its own command",
			input:    "@subsubsection Details",
			expected: "\\subsubsection*{Details}\n",
		},
		{
			name:     "unknown directive renders as prose",
			input:    "@unknown stuff",
			expected: "@unknown stuff",
		},
		{
			name:     "inline formatting inside content",
			input:    "@brief Uses `memcpy` a lot",
			expected: "\\brief{Uses \\texttt{memcpy} a lot}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderToString(t, tt.input); got != tt.expected {
				t.Errorf("renderDoc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderEmbeddedCodeIndentBoundary(t *testing.T) {
	// Exactly 4 columns past the base indentation starts a code block
	got := renderToString(t, "prose\n    code();")
	if !strings.Contains(got, `\begin{lstlisting}[style=C99,xleftmargin=5ex]`) {
		t.Errorf("indent base+4 should start a code block, got %q", got)
	}
	if !strings.Contains(got, "\ncode();\n") {
		t.Errorf("code block should strip base+4 columns, got %q", got)
	}

	// 3 columns past base is still prose
	got = renderToString(t, "prose\n   notcode();")
	if strings.Contains(got, "lstlisting") {
		t.Errorf("indent base+3 must not start a code block, got %q", got)
	}
}

func TestRenderEmbeddedCodeRelativeIndent(t *testing.T) {
	// Base indentation is the minimum over non-blank lines
	got := renderToString(t, "  prose\n      code();")
	if !strings.Contains(got, "\ncode();\n") {
		t.Errorf("expected code stripped relative to base indent, got %q", got)
	}
}

func TestRenderEmbeddedCodeBlankTrim(t *testing.T) {
	got := renderToString(t, "prose\n    code();\n    ")
	want := "prose\n\\begin{lstlisting}[style=C99,xleftmargin=5ex]\ncode();\n\\end{lstlisting}"
	if got != want {
		t.Errorf("renderDoc = %q, want %q", got, want)
	}

	// Blank indented lines alone never start a block
	got = renderToString(t, "prose\n        \nmore")
	if strings.Contains(got, "lstlisting") {
		t.Errorf("blank lines must not start a code block, got %q", got)
	}
}

func TestRenderFuncToggle(t *testing.T) {
	c := New()
	st := &scanState{}

	frags := c.renderDoc("@func demo", st)
	if !st.accumulating {
		t.Fatal("@func should enter accumulation")
	}
	if got := c.resolve(frags, st); got != "\\begin{function}{demo}\n" {
		t.Errorf("@func output = %q", got)
	}

	c.renderDoc("@endfunc", st)
	if st.accumulating {
		t.Error("@endfunc should exit accumulation")
	}

	// Nested @func leaves the flag set and keeps prior content
	st.enter()
	st.record([]string{"a;"})
	c.renderDoc("@func again", st)
	if !st.accumulating || len(st.collected) != 1 {
		t.Errorf("repeated @func must not reset state: accumulating=%v collected=%v",
			st.accumulating, st.collected)
	}
}
