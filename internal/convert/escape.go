package convert

import "strings"

// latexEscaper rewrites LaTeX special characters in a single simultaneous
// pass, so the braces introduced by \textbackslash{} and friends are never
// re-escaped.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes all LaTeX special characters in text.
func EscapeLaTeX(text string) string {
	return latexEscaper.Replace(text)
}
