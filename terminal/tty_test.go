package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsInteractiveRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	if IsInteractive(f) {
		t.Error("Expected regular file not to be a terminal")
	}
}

func TestEmergencyResetWritesSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[0m"} {
		if !strings.Contains(out, seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
