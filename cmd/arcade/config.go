package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cozy-tetris/internal/config"
	"github.com/vovakirdan/cozy-tetris/internal/registry"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default tuning file",
	Long: `Print the built-in tetris.yaml, or write it to ~/.arcade/configs so it
can be edited. An existing file is never overwritten.

Examples:
  arcade config
  arcade config --write`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVarP(&flagConfigWrite, "write", "w", false, "Write to ~/.arcade/configs/tetris.yaml")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return unknownGame(gameID)
	}
	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("%s has no tuning file", gameID)
	}

	if !flagConfigWrite {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	path, err := writeDefaultConfig(filepath.Join(home, ".arcade", "configs"), data)
	if err != nil {
		return err
	}
	logger.Info("config written", "path", path)
	return nil
}

// writeDefaultConfig creates dir/tetris.yaml with data. It fails if the
// file already exists.
func writeDefaultConfig(dir string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(dir, "tetris.yaml")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
