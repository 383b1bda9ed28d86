package convert

import (
	"fmt"
	"strings"
)

// renderDoc converts the de-decorated text of one documentation region into
// output fragments: directive lines, prose lines and embedded code blocks.
// Always returns at least one fragment so the region keeps its place in the
// output stream even when it renders to nothing.
func (c *Converter) renderDoc(content string, st *scanState) []fragment {
	lines := strings.Split(content, "\n")
	base := baseIndent(lines)

	var frags []fragment
	var out []string
	flush := func() {
		if len(out) > 0 {
			frags = append(frags, literal(strings.Join(out, "\n")))
			out = nil
		}
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		// Blank lines pass through
		if trimmed == "" {
			out = append(out, "")
			i++
			continue
		}

		// Directives are matched before inline formatting runs
		if d, ok := matchDirective(trimmed); ok {
			if d.Name == "@allfunc" {
				st.requestPlaceholder()
				flush()
				frags = append(frags, fragment{kind: fragAllFunc})
				i++
				continue
			}
			i = c.renderDirective(lines, i, d, st, &out)
			continue
		}

		// Indented 4+ columns past base starts an embedded code block
		if indentOf(line)-base >= 4 {
			i = c.renderEmbeddedCode(lines, i, base, &out)
			continue
		}

		out = append(out, FormatInline(trimmed))
		i++
	}

	flush()
	if len(frags) == 0 {
		frags = append(frags, literal(""))
	}
	return frags
}

// renderDirective emits one directive instance: the keyword's content plus
// all following non-blank, non-directive lines joined with single spaces.
// @func and @endfunc additionally toggle the accumulator before emitting.
func (c *Converter) renderDirective(lines []string, i int, d Directive, st *scanState, out *[]string) int {
	switch d.Name {
	case "@func":
		st.enter()
	case "@endfunc":
		st.exit()
	}

	trimmed := strings.TrimSpace(lines[i])
	var parts []string
	if content := strings.TrimSpace(trimmed[len(d.Name):]); content != "" {
		parts = append(parts, content)
	}

	i++
	for i < len(lines) {
		next := strings.TrimSpace(lines[i])
		if next == "" {
			i++ // blank line ends the content; the emitted blank replaces it
			break
		}
		if _, ok := matchDirective(next); ok {
			break
		}
		parts = append(parts, next)
		i++
	}

	*out = append(*out, d.Command+"{"+FormatInline(strings.Join(parts, " "))+"}", "")
	return i
}

// renderEmbeddedCode collects lines indented base+4 or deeper (blank lines
// included), strips the base+4 columns and wraps what remains in a listing
// with the comment-code margin. Entirely blank blocks emit nothing.
func (c *Converter) renderEmbeddedCode(lines []string, i, base int, out *[]string) int {
	var code []string
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			code = append(code, "")
			i++
			continue
		}
		if indentOf(line)-base < 4 {
			break
		}
		code = append(code, stripColumns(line, base+4))
		i++
	}

	code = trimBlankEdges(code)
	if len(code) > 0 {
		*out = append(*out, fmt.Sprintf(`\begin{lstlisting}[style=%s,xleftmargin=%s]`, c.Style, c.CommentMargin))
		*out = append(*out, code...)
		*out = append(*out, `\end{lstlisting}`)
	}
	return i
}

// stripColumns drops the first n columns of a line.
func stripColumns(line string, n int) string {
	if len(line) > n {
		return line[n:]
	}
	return ""
}
