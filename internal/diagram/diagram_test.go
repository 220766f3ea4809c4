package diagram

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AKAA-2025/Chess-AI-Engine/internal/board"
)

func TestRenderStartPosition(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, board.NewPosition())

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	// 32 pieces plus 16 coordinate labels.
	if got := strings.Count(out, "<text"); got != 48 {
		t.Errorf("text element count = %d, want 48", got)
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Errorf("rect element count = %d, want 64", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.svg")

	if err := WriteFile(path, board.NewPosition()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("file does not contain a complete SVG document")
	}
}
