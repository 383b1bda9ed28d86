// Package output delivers the generated LaTeX to its destination: stdout, a
// file, or the system clipboard.
package output

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using system commands
type systemClipboard struct{}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := c.findClipboardCommand()
	if cmd == nil {
		// No clipboard tool found, just print
		fmt.Println(text)
		return nil
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// findClipboardCommand returns the appropriate clipboard command for the system
func (c *systemClipboard) findClipboardCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ============================================================================
// Sink
// ============================================================================

// Mode represents how the generated document should be delivered
type Mode string

const (
	ModePrint Mode = "print"
	ModeFile  Mode = "file"
	ModeCopy  Mode = "copy"
)

// Sink writes conversion output according to the configured mode
type Sink struct {
	mode      Mode
	path      string // destination for ModeFile
	clipboard Clipboard
}

// NewSink creates a sink for the given mode. path is only used by ModeFile.
func NewSink(mode Mode, path string) *Sink {
	return &Sink{
		mode:      mode,
		path:      path,
		clipboard: &systemClipboard{},
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (s *Sink) WithClipboard(c Clipboard) *Sink {
	s.clipboard = c
	return s
}

// Write delivers the document text
func (s *Sink) Write(text string) error {
	switch s.mode {
	case ModeFile:
		if s.path == "" {
			return fmt.Errorf("file output requested without a path")
		}
		if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", s.path, err)
		}
		return nil
	case ModeCopy:
		return s.clipboard.Copy(text)
	default: // print
		fmt.Println(text)
		return nil
	}
}
