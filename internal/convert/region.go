package convert

import "strings"

const (
	blockCommentOpen  = "/**"
	blockCommentClose = "*/"
	lineCommentMarker = "///"
)

// regionKind classifies a maximal run of source lines.
type regionKind int

const (
	regionCode regionKind = iota
	regionBlockComment
	regionLineComment
)

// classifyRegion decides which region the given line starts. Block comments
// win over line comments: a line containing /** opens a block comment even if
// earlier text on the line looks like code.
func classifyRegion(line string) regionKind {
	if strings.Contains(line, blockCommentOpen) {
		return regionBlockComment
	}
	if strings.HasPrefix(strings.TrimSpace(line), lineCommentMarker) {
		return regionLineComment
	}
	return regionCode
}

// indentOf counts leading whitespace columns.
func indentOf(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

// baseIndent returns the minimum indentation over non-blank lines, the
// zero-point for embedded code block detection.
func baseIndent(lines []string) int {
	base := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if in := indentOf(line); base == -1 || in < base {
			base = in
		}
	}
	if base == -1 {
		return 0
	}
	return base
}

// stripCommentStar removes the leading * decoration (plus one following
// space) from a block comment line, preserving deeper indentation.
func stripCommentStar(line string) string {
	if !strings.HasPrefix(strings.TrimSpace(line), "*") {
		return line
	}
	after := line[strings.Index(line, "*")+1:]
	return strings.TrimPrefix(after, " ")
}
