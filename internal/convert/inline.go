package convert

import "regexp"

var (
	codeSpanRe = regexp.MustCompile("`([^`]+)`")
	boldRe     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	emphRe     = regexp.MustCompile(`\*([^*]+)\*`)
)

// FormatInline rewrites inline markers into LaTeX commands: `code` becomes
// \texttt (with its content escaped), **bold** becomes \textbf and *em*
// becomes \emph. Bold runs before italic so ***x*** resolves as bold nested
// in emphasis.
func FormatInline(text string) string {
	text = codeSpanRe.ReplaceAllStringFunc(text, func(m string) string {
		return `\texttt{` + EscapeLaTeX(m[1:len(m)-1]) + `}`
	})
	text = boldRe.ReplaceAllString(text, `\textbf{$1}`)
	text = emphRe.ReplaceAllString(text, `\emph{$1}`)
	return text
}
