package tui

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cozy-tetris/internal/core"
)

func TestRendererPalette(t *testing.T) {
	r := NewRenderer()
	r.SetPalette([]string{"#000000", "#F7A8B8", ""})

	if _, ok := r.styles.Get(core.CustomColor(0)); ok {
		t.Error("palette entry 0 should not get a style")
	}
	if _, ok := r.styles.Get(core.CustomColor(1)); !ok {
		t.Error("palette entry 1 should get a style")
	}
	if _, ok := r.styles.Get(core.CustomColor(2)); ok {
		t.Error("empty palette entries should not get a style")
	}

	got := r.Style(core.CustomColor(1)).GetForeground()
	if got != lipgloss.Color("#F7A8B8") {
		t.Errorf("Style(custom 1) foreground = %v, expected #F7A8B8", got)
	}

	// Replacing the palette drops stale entries.
	r.SetPalette([]string{"#000000", ""})
	if _, ok := r.styles.Get(core.CustomColor(1)); ok {
		t.Error("cleared palette entry should be removed")
	}
}

func TestRendererANSIColors(t *testing.T) {
	r := NewRenderer()
	for _, c := range ansiColors {
		if _, ok := r.styles.Get(c.color); !ok {
			t.Errorf("missing style for color %d", c.color)
		}
	}
	if _, ok := r.styles.Get(core.ColorDefault); ok {
		t.Error("default color should use the plain style")
	}
}

func TestRenderKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '█', core.CustomColor(3))
	s.SetColored(3, 0, '█', core.CustomColor(3))
	s.DrawTextColored(0, 1, "xyz", core.ColorGray)

	r := NewRenderer()
	r.SetPalette([]string{"#000000", "#111111", "#222222", "#333333"})
	out := r.Render(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Render() produced %d lines, expected 2", len(lines))
	}
	if w := lipgloss.Width(lines[0]); w != 6 {
		t.Errorf("line 0 width = %d, expected 6", w)
	}
	if !strings.Contains(out, "██") {
		t.Error("block runes missing from output")
	}
	if !strings.Contains(out, "xyz") {
		t.Error("gray text missing from output")
	}
}

func TestWriteScreenshot(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "·ok")

	dir := filepath.Join(t.TempDir(), "shots")
	at := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	path, err := writeScreenshot(dir, "tetris", s, at)
	if err != nil {
		t.Fatalf("writeScreenshot() failed: %v", err)
	}
	if filepath.Base(path) != "tetris_20240309_140506.txt.gz" {
		t.Errorf("file name = %q", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip.NewReader() failed: %v", err)
	}
	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	if string(data) != s.String() {
		t.Errorf("screenshot = %q, expected %q", data, s.String())
	}
	if zr.Name != "tetris_20240309_140506.txt" {
		t.Errorf("gzip name = %q", zr.Name)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestEncodeScreenshotReportsWriteErrors(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawText(0, 0, "hello")

	diskFull := errors.New("disk full")
	err := encodeScreenshot(failingWriter{diskFull}, "x.txt", s, time.Now())
	if !errors.Is(err, diskFull) {
		t.Errorf("encodeScreenshot() error = %v, expected to wrap %v", err, diskFull)
	}
}

func TestWriteScreenshotOpenError(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	// A directory where the file should go makes the open fail.
	if err := os.Mkdir(filepath.Join(dir, "tetris_20240309_140506.txt.gz"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := writeScreenshot(dir, "tetris", core.NewScreen(2, 1), at); err == nil {
		t.Error("writeScreenshot() should fail")
	}
}
