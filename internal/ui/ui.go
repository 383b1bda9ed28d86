// Package ui implements the interactive preview of generated LaTeX output.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// File is one converted source file shown in the preview
type File struct {
	Path  string
	LaTeX string
}

// Run launches the preview TUI over the converted files
func Run(files []File) error {
	if len(files) == 0 {
		return fmt.Errorf("nothing to preview")
	}

	RefreshStyles()

	p := tea.NewProgram(newPreviewModel(files), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// filterFiles returns the indices of files whose path contains every word of
// the query, case-insensitive
func filterFiles(files []File, query string) []int {
	words := strings.Fields(strings.ToLower(query))
	var visible []int
	for i, f := range files {
		path := strings.ToLower(f.Path)
		match := true
		for _, w := range words {
			if !strings.Contains(path, w) {
				match = false
				break
			}
		}
		if match {
			visible = append(visible, i)
		}
	}
	return visible
}

// colorize applies per-line styles to LaTeX text for terminal display
func colorize(text string, s *StyleManager) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, `\begin{lstlisting}`) || line == `\end{lstlisting}`:
			lines[i] = s.Listing.Render(line)
		case strings.HasPrefix(line, "%"):
			lines[i] = s.Dim.Render(line)
		case strings.HasPrefix(line, `\`):
			lines[i] = s.Command.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
