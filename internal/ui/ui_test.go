package ui

import (
	"reflect"
	"strings"
	"testing"
)

func TestFilterFiles(t *testing.T) {
	files := []File{
		{Path: "utils/reg.c"},
		{Path: "utils/debug.c"},
		{Path: "tests/test_reg.c"},
	}

	tests := []struct {
		name     string
		query    string
		expected []int
	}{
		{
			name:     "empty query matches everything",
			query:    "",
			expected: []int{0, 1, 2},
		},
		{
			name:     "substring match",
			query:    "reg",
			expected: []int{0, 2},
		},
		{
			name:     "case insensitive",
			query:    "DEBUG",
			expected: []int{1},
		},
		{
			name:     "all words must match",
			query:    "reg tests",
			expected: []int{2},
		},
		{
			name:     "no match",
			query:    "missing",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filterFiles(files, tt.query); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("filterFiles(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestColorizeKeepsLineCount(t *testing.T) {
	text := "% File: a.c\n\\brief{x}\nplain\n\\begin{lstlisting}[style=C99]\nint a;\n\\end{lstlisting}"
	got := colorize(text, DefaultStyles())

	wantLines := 6
	if n := 1 + strings.Count(got, "\n"); n != wantLines {
		t.Errorf("colorize changed the line count: got %d, want %d", n, wantLines)
	}
}
