package convert

import "strings"

// Directive maps a documentation keyword to the LaTeX command it emits.
type Directive struct {
	Name    string // keyword including the @ prefix
	Command string // emitted LaTeX command; empty for @allfunc (synthesized)
}

// directiveTable lists the recognized directives in match order. Longer
// keywords come before their prefixes: @endfunc must be tested before @end.
var directiveTable = []Directive{
	{"@file", `\file`},
	{"@brief", `\brief`},
	{"@author", `\author`},
	{"@func", `\begin{function}`},
	{"@endfunc", `\end{function}`},
	{"@param", `\param`},
	{"@return", `\return`},
	{"@subsubsection", `\subsubsection*`},
	{"@subsection", `\subsection`},
	{"@license", `\license`},
	{"@paragraph", `\paragraph`},
	{"@api", `\api`},
	{"@begin", `\begin`},
	{"@end", `\end`},
	{"@item", `\item`},
	{"@allfunc", ""},
}

// matchDirective reports the directive the trimmed line starts with, if any.
func matchDirective(line string) (Directive, bool) {
	for _, d := range directiveTable {
		if strings.HasPrefix(line, d.Name) {
			return d, true
		}
	}
	return Directive{}, false
}

// Directives returns the directive table for display purposes.
func Directives() []Directive {
	out := make([]Directive, len(directiveTable))
	copy(out, directiveTable)
	return out
}
