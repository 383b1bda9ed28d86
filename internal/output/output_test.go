package output

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeClipboard records what was copied
type fakeClipboard struct {
	copied string
}

func (f *fakeClipboard) Copy(text string) error {
	f.copied = text
	return nil
}

func TestSinkFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tex")
	sink := NewSink(ModeFile, path)

	if err := sink.Write("\\brief{hello}\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "\\brief{hello}\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestSinkFileModeWithoutPath(t *testing.T) {
	if err := NewSink(ModeFile, "").Write("x"); err == nil {
		t.Fatal("expected an error when file mode has no path")
	}
}

func TestSinkCopyMode(t *testing.T) {
	clip := &fakeClipboard{}
	sink := NewSink(ModeCopy, "").WithClipboard(clip)

	if err := sink.Write("copied text"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if clip.copied != "copied text" {
		t.Errorf("clipboard got %q", clip.copied)
	}
}
