package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads tetris configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
// Files are decoded over the defaults, so a file may set only some keys.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := load("tetris.yaml", customPath, DefaultTetrisConfig(), defaultTetrisYAML)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load decodes the first readable file in the search order over base.
// A custom path that cannot be read or parsed is an error; other locations
// are skipped when missing or malformed.
func load[T any](filename, customPath string, base T, embedded []byte) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := decodeFile(userCfgPath, base); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := decodeFile(filepath.Join("configs", filename), base); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := base
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFile[T any](path string, base T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyTetrisPreset adjusts the gravity curve for a difficulty preset.
// Normal keeps the configured curve.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseMs += cfg.Gravity.BaseMs / 2
		cfg.Gravity.StepMs = cfg.Gravity.StepMs * 3 / 4
		cfg.Gravity.MinMs += cfg.Gravity.MinMs / 2
	case DifficultyHard:
		cfg.Gravity.BaseMs = cfg.Gravity.BaseMs * 2 / 3
		cfg.Gravity.MinMs = cfg.Gravity.MinMs * 2 / 3
	case DifficultyFixed:
		cfg.Gravity.StepMs = 0
	}
	if cfg.Gravity.MinMs < 1 {
		cfg.Gravity.MinMs = 1
	}
}
