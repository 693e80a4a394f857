package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/vovakirdan/cozy-tetris/internal/core"
)

// screenshotDir returns ~/.arcade/screenshots.
func screenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: home directory: %w", err)
	}
	return filepath.Join(home, ".arcade", "screenshots"), nil
}

// writeScreenshot saves the plain text of s as a gzip file named after the
// game and timestamp. Returns the file path.
func writeScreenshot(dir, gameID string, s *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: create directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt.gz", gameID, at.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("screenshot: open: %w", err)
	}
	if err := encodeScreenshot(f, name[:len(name)-len(".gz")], s, at); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("screenshot: close: %w", err)
	}
	return path, nil
}

// encodeScreenshot writes the gzip stream for s to w.
func encodeScreenshot(w io.Writer, name string, s *core.Screen, at time.Time) error {
	zw := gzip.NewWriter(w)
	zw.Name = name
	zw.ModTime = at
	if _, err := zw.Write([]byte(s.String())); err != nil {
		return fmt.Errorf("screenshot: write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("screenshot: flush: %w", err)
	}
	return nil
}
