// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cozy-tetris/internal/games/tetris/engine"
)

// TetrisConfig contains all tuning for the tetris engine and its host.
type TetrisConfig struct {
	Grid     TetrisGrid     `yaml:"grid"`
	Input    TetrisInput    `yaml:"input"`
	Gravity  TetrisGravity  `yaml:"gravity"`
	Features TetrisFeatures `yaml:"features"`
	Palette  []string       `yaml:"palette"`
}

// TetrisGrid defines the board size in cells.
type TetrisGrid struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TetrisInput defines horizontal repeat timing.
type TetrisInput struct {
	DASMs int64 `yaml:"das_ms"` // delay before a held direction repeats
	ARRMs int64 `yaml:"arr_ms"` // interval between repeats
	// ReleaseAfterMs is how long the terminal host waits for a key repeat
	// before treating a direction as released. 0 releases in the same frame.
	ReleaseAfterMs int64 `yaml:"release_after_ms"`
}

// TetrisGravity defines the drop interval curve: max(min, base - (level-1)*step).
type TetrisGravity struct {
	BaseMs int64 `yaml:"base_ms"`
	StepMs int64 `yaml:"step_ms"`
	MinMs  int64 `yaml:"min_ms"`
}

// TetrisFeatures toggles optional engine capabilities.
type TetrisFeatures struct {
	Ghost      bool `yaml:"ghost"`
	Preview    bool `yaml:"preview"`
	HoldRepeat bool `yaml:"hold_repeat"`
}

// Engine converts the configuration into engine settings with the standard
// shape set.
func (c TetrisConfig) Engine() engine.Config {
	return engine.Config{
		Cols:  c.Grid.Cols,
		Rows:  c.Grid.Rows,
		DASMs: c.Input.DASMs,
		ARRMs: c.Input.ARRMs,
		Gravity: engine.Gravity{
			BaseMs: c.Gravity.BaseMs,
			StepMs: c.Gravity.StepMs,
			MinMs:  c.Gravity.MinMs,
		},
		Shapes:  engine.StandardShapes(),
		Palette: append([]string(nil), c.Palette...),
		Features: engine.Features{
			Ghost:      c.Features.Ghost,
			Preview:    c.Features.Preview,
			HoldRepeat: c.Features.HoldRepeat,
		},
	}
}

// Validate checks the configuration by building engine settings from it.
func (c TetrisConfig) Validate() error {
	if c.Input.ReleaseAfterMs < 0 {
		return fmt.Errorf("config: input.release_after_ms must not be negative, got %d", c.Input.ReleaseAfterMs)
	}
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}
