package convert

import "strings"

// fragKind distinguishes literal output from placeholders resolved after the
// full file has been scanned.
type fragKind int

const (
	fragLiteral fragKind = iota
	fragAllFunc          // replaced by the accumulated @func/@endfunc listing
)

// fragment is one piece of the output stream. Fragments are joined with
// newlines once all placeholders have been resolved.
type fragment struct {
	kind fragKind
	text string
}

func literal(text string) fragment {
	return fragment{kind: fragLiteral, text: text}
}

// scanState carries the per-file exemplar accumulation state across regions:
// the @func/@endfunc toggle and the code lines collected while it is set.
// Nested @func directives do not reset prior content; the flag simply stays
// set and accumulation continues.
type scanState struct {
	accumulating bool
	collected    []string
	placeholders int
}

func (s *scanState) enter() { s.accumulating = true }
func (s *scanState) exit()  { s.accumulating = false }

// recordLine appends one raw code line when accumulation is active.
func (s *scanState) recordLine(line string) {
	if s.accumulating {
		s.collected = append(s.collected, line)
	}
}

// record appends a code region when accumulation is active, with leading and
// trailing blank lines trimmed.
func (s *scanState) record(lines []string) {
	if !s.accumulating {
		return
	}
	s.collected = append(s.collected, trimBlankEdges(lines)...)
}

// requestPlaceholder notes that an @allfunc directive asked for the
// accumulated listing.
func (s *scanState) requestPlaceholder() {
	s.placeholders++
}

// trimBlankEdges drops leading and trailing blank lines.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
