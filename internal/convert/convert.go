// Package convert turns annotated C source into LaTeX: syntax-highlighted
// code listings interleaved with documentation rendered from /** ... */ and
// /// comments.
package convert

import (
	"fmt"
	"os"
	"strings"
)

// Formatting defaults, overridable per Converter.
const (
	DefaultStyle         = "C99"
	DefaultCommentMargin = "5ex"
	DefaultAllFuncMargin = "0ex"
)

// Converter holds the formatting settings for a conversion run. The zero
// value is not usable; call New.
type Converter struct {
	Style         string // lstlisting style name
	CommentMargin string // xleftmargin for code blocks inside comments
	AllFuncMargin string // xleftmargin for the accumulated @allfunc listing
}

// New returns a Converter with default formatting settings.
func New() *Converter {
	return &Converter{
		Style:         DefaultStyle,
		CommentMargin: DefaultCommentMargin,
		AllFuncMargin: DefaultAllFuncMargin,
	}
}

// ConvertFiles converts each file in order and joins the results, prefixing
// every file with a "% File:" marker line. The first unreadable file aborts
// the run.
func (c *Converter) ConvertFiles(paths []string) (string, error) {
	var results []string
	for _, path := range paths {
		body, err := c.ConvertFile(path)
		if err != nil {
			return "", err
		}
		results = append(results, "% File: "+path, "", body, "")
	}
	return strings.Join(results, "\n"), nil
}

// ConvertFile reads one file and converts its content.
func (c *Converter) ConvertFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return c.ConvertSource(string(data)), nil
}

// ConvertSource converts source text in a single forward pass: the cursor
// walks the lines, classifies the region starting at each position and emits
// it, then a final pass resolves @allfunc placeholders against whatever the
// scan accumulated.
func (c *Converter) ConvertSource(src string) string {
	lines := strings.Split(src, "\n")
	st := &scanState{}
	var frags []fragment

	i := 0
	for i < len(lines) {
		switch classifyRegion(lines[i]) {
		case regionBlockComment:
			i = c.convertBlockComment(lines, i, st, &frags)
		case regionLineComment:
			i = c.convertLineComments(lines, i, st, &frags)
		default:
			i = c.convertCode(lines, i, st, &frags)
		}
	}

	return c.resolve(frags, st)
}

// convertCode consumes a run of plain code lines up to the next comment and
// emits it as a numbered listing. Active accumulation records the same run.
func (c *Converter) convertCode(lines []string, i int, st *scanState, frags *[]fragment) int {
	start := i
	for i < len(lines) && classifyRegion(lines[i]) == regionCode {
		i++
	}
	chunk := lines[start:i]

	st.record(chunk)
	c.emitNumberedListing(frags, chunk, start+1)
	return i
}

// convertLineComments consumes a contiguous /// run and renders the
// de-decorated text as documentation.
func (c *Converter) convertLineComments(lines []string, i int, st *scanState, frags *[]fragment) int {
	var comment []string
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, lineCommentMarker) {
			break
		}
		comment = append(comment, strings.TrimSpace(trimmed[len(lineCommentMarker):]))
		i++
	}
	if len(comment) > 0 {
		*frags = append(*frags, c.renderDoc(strings.Join(comment, "\n"), st)...)
	}
	return i
}

// convertBlockComment handles a /** ... */ comment: code before the opener is
// flushed as its own listing, the comment body is rendered as documentation,
// and code after the closer on the same physical line becomes a one-line
// listing with its true line number.
func (c *Converter) convertBlockComment(lines []string, i int, st *scanState, frags *[]fragment) int {
	line := lines[i]
	lineNum := i + 1
	start := strings.Index(line, blockCommentOpen)

	if start > 0 {
		c.emitCodeBeforeComment(frags, line[:start], lineNum, st)
	}

	rest := line[start+len(blockCommentOpen):]

	// Comment closed on the opening line
	if end := strings.Index(rest, blockCommentClose); end >= 0 {
		var comment []string
		if content := strings.TrimSpace(rest[:end]); content != "" {
			comment = append(comment, content)
		}

		if remaining := strings.TrimSpace(rest[end+len(blockCommentClose):]); remaining != "" {
			*frags = append(*frags, c.renderDoc(strings.Join(comment, "\n"), st)...)
			st.recordLine(line)
			c.emitRawListing(frags, line, lineNum)
			return i + 1
		}

		if len(comment) > 0 {
			*frags = append(*frags, c.renderDoc(strings.Join(comment, "\n"), st)...)
		}
		return i + 1
	}

	// Multi-line comment: first line keeps its original spacing
	var comment []string
	if strings.TrimSpace(rest) != "" {
		comment = append(comment, rest)
	}

	i++
	for i < len(lines) {
		line = lines[i]
		end := strings.Index(line, blockCommentClose)
		if end < 0 {
			comment = append(comment, stripCommentStar(line))
			i++
			continue
		}

		comment = append(comment, stripCommentStar(line[:end]))

		if remaining := strings.TrimSpace(line[end+len(blockCommentClose):]); remaining != "" {
			*frags = append(*frags, c.renderDoc(strings.Join(comment, "\n"), st)...)
			st.recordLine(line)
			c.emitRawListing(frags, line, i+1)
			return i + 1
		}

		if len(comment) > 0 {
			*frags = append(*frags, c.renderDoc(strings.Join(comment, "\n"), st)...)
		}
		return i + 1
	}

	// Unterminated comment: end of input is an implicit closer
	if len(comment) > 0 {
		*frags = append(*frags, c.renderDoc(strings.Join(comment, "\n"), st)...)
	}
	return i
}

// emitCodeBeforeComment flushes code preceding a comment opener on the same
// physical line.
func (c *Converter) emitCodeBeforeComment(frags *[]fragment, code string, lineNum int, st *scanState) {
	code = strings.TrimRight(code, " \t")
	if strings.TrimSpace(code) == "" {
		return
	}
	st.recordLine(code)
	c.emitRawListing(frags, code, lineNum)
}

// emitNumberedListing emits a code chunk as a numbered listing, trimming
// blank edges while keeping firstnumber pointing at the first kept line.
func (c *Converter) emitNumberedListing(frags *[]fragment, chunk []string, firstLine int) {
	lead := 0
	for lead < len(chunk) && strings.TrimSpace(chunk[lead]) == "" {
		lead++
	}
	trimmed := trimBlankEdges(chunk)
	if len(trimmed) == 0 {
		return
	}

	text := fmt.Sprintf(`\begin{lstlisting}[style=%s, numbers=left, firstnumber=%d]`, c.Style, firstLine+lead) +
		"\n" + strings.Join(trimmed, "\n") + "\n" + `\end{lstlisting}`
	*frags = append(*frags, literal(text))
}

// emitRawListing emits a single physical line as its own numbered listing.
func (c *Converter) emitRawListing(frags *[]fragment, line string, lineNum int) {
	text := fmt.Sprintf(`\begin{lstlisting}[style=%s, numbers=left, firstnumber=%d]`, c.Style, lineNum) +
		"\n" + line + "\n" + `\end{lstlisting}`
	*frags = append(*frags, literal(text))
}

// resolve joins the fragment stream, replacing every @allfunc placeholder
// with the single accumulated listing, or with empty text when nothing was
// accumulated.
func (c *Converter) resolve(frags []fragment, st *scanState) string {
	listing := ""
	if code := trimBlankEdges(st.collected); st.placeholders > 0 && len(code) > 0 {
		listing = fmt.Sprintf(`\begin{lstlisting}[style=%s,xleftmargin=%s]`, c.Style, c.AllFuncMargin) +
			"\n" + strings.Join(code, "\n") + "\n" + `\end{lstlisting}`
	}

	parts := make([]string, len(frags))
	for i, f := range frags {
		if f.kind == fragAllFunc {
			parts[i] = listing
		} else {
			parts[i] = f.text
		}
	}
	return strings.Join(parts, "\n")
}
