package config

import (
	_ "embed"

	"github.com/vovakirdan/cozy-tetris/internal/games/tetris/engine"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: TetrisGrid{
			Cols: engine.DefaultCols,
			Rows: engine.DefaultRows,
		},
		Input: TetrisInput{
			DASMs:          engine.DefaultDASMs,
			ARRMs:          engine.DefaultARRMs,
			ReleaseAfterMs: 90,
		},
		Gravity: TetrisGravity{
			BaseMs: 220,
			StepMs: 20,
			MinMs:  80,
		},
		Features: TetrisFeatures{
			Ghost:      true,
			Preview:    true,
			HoldRepeat: true,
		},
		Palette: engine.DefaultPalette(),
	}
}

// ClassicTetrisConfig returns the built-in configuration with ghost,
// preview and hold-repeat switched off.
func ClassicTetrisConfig() TetrisConfig {
	cfg := DefaultTetrisConfig()
	cfg.Features = TetrisFeatures{}
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_classic":
		return defaultTetrisYAML
	default:
		return nil
	}
}
