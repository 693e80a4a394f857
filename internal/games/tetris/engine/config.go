package engine

import (
	"errors"
	"fmt"
)

// Default tuning values.
const (
	DefaultCols  = 12
	DefaultRows  = 20
	DefaultDASMs = 150 // delay before a held direction starts repeating
	DefaultARRMs = 30  // interval between repeats once DAS has elapsed

	// PaletteSize is the number of palette entries; index 0 is the background.
	PaletteSize = 8

	// MaxShapeSize bounds a template's matrix so a lock never clears more
	// rows than the scoring table covers.
	MaxShapeSize = 4
)

// Configuration errors returned by New and Config.Validate.
var (
	ErrInvalidDimensions = errors.New("engine: grid dimensions must be positive")
	ErrNoShapes          = errors.New("engine: shape set is empty")
	ErrInvalidShape      = errors.New("engine: invalid shape")
	ErrInvalidPalette    = errors.New("engine: invalid palette")
	ErrInvalidTiming     = errors.New("engine: invalid timing")
)

// Features toggles the optional capabilities of a session.
type Features struct {
	Ghost      bool // compute the landing position of the active piece
	Preview    bool // expose the next piece in snapshots
	HoldRepeat bool // DAS/ARR auto-repeat for held directions
}

// AllFeatures returns a Features value with every capability enabled.
func AllFeatures() Features {
	return Features{Ghost: true, Preview: true, HoldRepeat: true}
}

// Gravity describes how the drop interval shrinks as the level rises.
type Gravity struct {
	BaseMs int64 // interval at level 1
	StepMs int64 // reduction per level
	MinMs  int64 // floor
}

// DefaultGravity returns the standard curve: max(80, 220 - (level-1)*20).
func DefaultGravity() Gravity {
	return Gravity{BaseMs: 220, StepMs: 20, MinMs: 80}
}

// Interval returns the drop interval in milliseconds for the given level.
func (g Gravity) Interval(level int) int64 {
	if level < 1 {
		level = 1
	}
	v := g.BaseMs - int64(level-1)*g.StepMs
	if v < g.MinMs {
		return g.MinMs
	}
	return v
}

// Config holds everything needed to construct a Session.
type Config struct {
	Cols     int
	Rows     int
	DASMs    int64
	ARRMs    int64
	Gravity  Gravity
	Shapes   []Shape
	Palette  []string
	Features Features
}

// DefaultConfig returns the standard 12x20 configuration with all features on.
func DefaultConfig() Config {
	return Config{
		Cols:     DefaultCols,
		Rows:     DefaultRows,
		DASMs:    DefaultDASMs,
		ARRMs:    DefaultARRMs,
		Gravity:  DefaultGravity(),
		Shapes:   StandardShapes(),
		Palette:  DefaultPalette(),
		Features: AllFeatures(),
	}
}

// Validate checks the configuration and reports the first problem found.
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Cols, c.Rows)
	}
	if c.DASMs <= 0 || c.ARRMs <= 0 {
		return fmt.Errorf("%w: das=%d arr=%d", ErrInvalidTiming, c.DASMs, c.ARRMs)
	}
	if c.Gravity.BaseMs <= 0 || c.Gravity.MinMs <= 0 || c.Gravity.StepMs < 0 {
		return fmt.Errorf("%w: gravity %+v", ErrInvalidTiming, c.Gravity)
	}
	if len(c.Palette) != PaletteSize {
		return fmt.Errorf("%w: want %d entries, got %d", ErrInvalidPalette, PaletteSize, len(c.Palette))
	}
	if len(c.Shapes) == 0 {
		return ErrNoShapes
	}
	for i, s := range c.Shapes {
		if err := s.validate(); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, s.Name, err)
		}
		if s.Size() > c.Cols {
			return fmt.Errorf("%w: %s is wider than the grid", ErrInvalidShape, s.Name)
		}
		if s.Size() > c.Rows {
			return fmt.Errorf("%w: %s is taller than the grid", ErrInvalidShape, s.Name)
		}
	}
	return nil
}
