package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cozy-tetris/internal/games/tetris/engine"
)

func TestEmbeddedDefaultsMatchBuiltIn(t *testing.T) {
	var cfg TetrisConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tetris"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestDefaultsMatchEngine(t *testing.T) {
	got := DefaultTetrisConfig().Engine()
	want := engine.DefaultConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Engine() = %+v, expected %+v", got, want)
	}
}

func TestClassicConfig(t *testing.T) {
	f := ClassicTetrisConfig().Engine().Features
	if f.Ghost || f.Preview || f.HoldRepeat {
		t.Errorf("classic features = %+v, expected all off", f)
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	data := []byte("grid:\n  cols: 10\ninput:\n  das_ms: 120\nfeatures:\n  ghost: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Grid.Cols != 10 {
		t.Errorf("Grid.Cols = %d, expected 10", cfg.Grid.Cols)
	}
	if cfg.Grid.Rows != 20 {
		t.Errorf("Grid.Rows = %d, expected default 20", cfg.Grid.Rows)
	}
	if cfg.Input.DASMs != 120 || cfg.Input.ARRMs != 30 {
		t.Errorf("Input = %+v, expected das 120 arr 30", cfg.Input)
	}
	if cfg.Features.Ghost || !cfg.Features.Preview {
		t.Errorf("Features = %+v, expected ghost off and preview on", cfg.Features)
	}
	if len(cfg.Palette) != engine.PaletteSize {
		t.Errorf("Palette has %d entries, expected %d", len(cfg.Palette), engine.PaletteSize)
	}
}

func TestLoadTetrisErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), os.ErrNotExist},
		{"bad yaml", write("bad.yaml", "grid: [1, 2"), nil},
		{"zero rows", write("rows.yaml", "grid:\n  rows: 0\n"), engine.ErrInvalidDimensions},
		{"grid shorter than a piece", write("short.yaml", "grid:\n  rows: 3\n"), engine.ErrInvalidShape},
		{"short palette", write("pal.yaml", "palette: [\"#000\"]\n"), engine.ErrInvalidPalette},
		{"negative release", write("rel.yaml", "input:\n  release_after_ms: -1\n"), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTetris(tc.path)
			if err == nil {
				t.Fatal("LoadTetris() should fail")
			}
			if tc.target != nil && !errors.Is(err, tc.target) {
				t.Errorf("error = %v, expected to wrap %v", err, tc.target)
			}
		})
	}
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded defaults.
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() error = %v", err)
	}
	if cfg.Grid.Cols != 12 {
		t.Errorf("Grid.Cols = %d, expected 12", cfg.Grid.Cols)
	}

	// Local configs directory.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "tetris.yaml"), []byte("grid:\n  cols: 14\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadTetris("")
	if cfg.Grid.Cols != 14 {
		t.Errorf("Grid.Cols = %d, expected 14 from ./configs", cfg.Grid.Cols)
	}

	// User directory wins over local.
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "tetris.yaml"), []byte("grid:\n  cols: 16\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadTetris("")
	if cfg.Grid.Cols != 16 {
		t.Errorf("Grid.Cols = %d, expected 16 from ~/.arcade/configs", cfg.Grid.Cols)
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected TetrisGravity
	}{
		{DifficultyNormal, TetrisGravity{BaseMs: 220, StepMs: 20, MinMs: 80}},
		{DifficultyEasy, TetrisGravity{BaseMs: 330, StepMs: 15, MinMs: 120}},
		{DifficultyHard, TetrisGravity{BaseMs: 146, StepMs: 20, MinMs: 53}},
		{DifficultyFixed, TetrisGravity{BaseMs: 220, StepMs: 0, MinMs: 80}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)
			if cfg.Gravity != tc.expected {
				t.Errorf("Gravity = %+v, expected %+v", cfg.Gravity, tc.expected)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
