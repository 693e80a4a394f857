package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 12, cfg.Cols)
	assert.Equal(t, 20, cfg.Rows)
	assert.Equal(t, int64(150), cfg.DASMs)
	assert.Equal(t, int64(30), cfg.ARRMs)
	assert.Len(t, cfg.Shapes, 7)
	assert.Len(t, cfg.Palette, 8)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		err    error
	}{
		{"zero cols", func(c *Config) { c.Cols = 0 }, ErrInvalidDimensions},
		{"negative rows", func(c *Config) { c.Rows = -3 }, ErrInvalidDimensions},
		{"no shapes", func(c *Config) { c.Shapes = nil }, ErrNoShapes},
		{"short palette", func(c *Config) { c.Palette = c.Palette[:7] }, ErrInvalidPalette},
		{"zero das", func(c *Config) { c.DASMs = 0 }, ErrInvalidTiming},
		{"negative arr", func(c *Config) { c.ARRMs = -1 }, ErrInvalidTiming},
		{"zero gravity floor", func(c *Config) { c.Gravity.MinMs = 0 }, ErrInvalidTiming},
		{"negative gravity step", func(c *Config) { c.Gravity.StepMs = -5 }, ErrInvalidTiming},
		{"non-square shape", func(c *Config) {
			c.Shapes = []Shape{{Name: "bad", Cells: [][]int{{1, 1, 1}, {1, 0, 0}}}}
		}, ErrInvalidShape},
		{"mixed colors", func(c *Config) {
			c.Shapes = []Shape{{Name: "bad", Cells: [][]int{{1, 2}, {0, 0}}}}
		}, ErrInvalidShape},
		{"empty shape", func(c *Config) {
			c.Shapes = []Shape{{Name: "bad", Cells: [][]int{{0, 0}, {0, 0}}}}
		}, ErrInvalidShape},
		{"oversized shape", func(c *Config) {
			c.Shapes = []Shape{{Name: "bad", Cells: [][]int{
				{1, 0, 0, 0, 0}, {1, 0, 0, 0, 0}, {1, 0, 0, 0, 0}, {1, 0, 0, 0, 0}, {1, 0, 0, 0, 0},
			}}}
		}, ErrInvalidShape},
		{"color outside palette", func(c *Config) {
			c.Shapes = []Shape{{Name: "bad", Cells: [][]int{{9}}}}
		}, ErrInvalidShape},
		{"shape wider than grid", func(c *Config) { c.Cols = 3 }, ErrInvalidShape},
		{"shape taller than grid", func(c *Config) { c.Rows = 3 }, ErrInvalidShape},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)

			_, err = New(cfg, always(0))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSmallestGridPlaysWithoutPanic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows = 4, 4
	require.NoError(t, cfg.Validate())

	for i := range cfg.Shapes {
		s := newSession(t, cfg, always(i))
		require.NotPanics(t, func() {
			for n := 0; n < 20; n++ {
				s.SoftDrop()
				s.HardDrop()
			}
		}, "shape %s", cfg.Shapes[i].Name)
	}
}

func TestNewRejectsNilRand(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	assert.Error(t, err)
}

func TestGravityInterval(t *testing.T) {
	g := DefaultGravity()
	tests := []struct {
		level    int
		expected int64
	}{
		{0, 220},
		{1, 220},
		{2, 200},
		{4, 160},
		{8, 80},
		{9, 80},
		{30, 80},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, g.Interval(tc.level), "level %d", tc.level)
	}

	fixed := Gravity{BaseMs: 300, StepMs: 0, MinMs: 80}
	assert.Equal(t, int64(300), fixed.Interval(12))
}

func TestStandardShapesAreCopies(t *testing.T) {
	a := StandardShapes()
	a[0].Cells[1][1] = 0
	b := StandardShapes()
	assert.Equal(t, 1, b[0].Cells[1][1])
}

func TestStandardShapeColors(t *testing.T) {
	want := map[string]int{"T": 1, "O": 2, "L": 3, "J": 4, "I": 5, "S": 6, "Z": 7}
	for _, s := range StandardShapes() {
		assert.Equal(t, want[s.Name], s.Color(), s.Name)
		assert.NoError(t, s.validate(), s.Name)
	}
}

func TestMatrixColor(t *testing.T) {
	assert.Equal(t, 0, MatrixColor(nil))
	assert.Equal(t, 0, MatrixColor([][]int{{0, 0}, {0, 0}}))
	assert.Equal(t, 5, MatrixColor([][]int{{0, 0, 0}, {0, 0, 5}, {0, 0, 5}}))
	for _, s := range StandardShapes() {
		assert.Equal(t, s.Color(), MatrixColor(s.Cells), s.Name)
	}
}
