// Package tetris adapts the falling-block engine to the arcade platform.
// It turns fixed-rate ticks into the engine's millisecond clock, maps input
// actions to engine commands and renders snapshots into a core.Screen.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/cozy-tetris/internal/config"
	"github.com/vovakirdan/cozy-tetris/internal/core"
	"github.com/vovakirdan/cozy-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/cozy-tetris/internal/registry"
)

// Variant selects which engine capabilities are enabled.
type Variant string

const (
	// VariantModern enables the ghost piece, next preview and DAS/ARR.
	VariantModern Variant = "tetris"
	// VariantClassic disables all three.
	VariantClassic Variant = "tetris_classic"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the
// configured curve unchanged.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// Game implements registry.Game around an engine session.
type Game struct {
	variant Variant
	cfg     config.TetrisConfig
	cfgErr  error

	rng     *rand.Rand
	session *engine.Session
	snap    engine.Snapshot

	tick     uint64
	runTicks int64 // ticks spent unpaused; drives the engine clock
	tickRate int
	rounds   int

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates the modern variant.
func New() *Game {
	return &Game{variant: VariantModern}
}

// NewClassic creates the classic variant.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

func init() {
	registry.Register(string(VariantModern), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Tetris (Classic)"
	}
	return "Tetris"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "No ghost, no preview, one move per key press"
	}
	return "Ghost piece, next preview and auto-repeat"
}

// Palette returns the hex colors for core.CustomColor cells.
func (g *Game) Palette() []string {
	if len(g.cfg.Palette) == 0 {
		return engine.DefaultPalette()
	}
	return g.cfg.Palette
}

// ConfigError reports why the configured tuning was rejected, if it was.
// The game then runs on built-in defaults.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// builtinConfig is the variant's tuning when no valid config file exists.
func (g *Game) builtinConfig() config.TetrisConfig {
	if g.variant == VariantClassic {
		return config.ClassicTetrisConfig()
	}
	return config.DefaultTetrisConfig()
}

func (g *Game) loadConfig() {
	cfg, err := config.LoadTetris(configPath)
	g.cfgErr = err
	if err != nil {
		cfg = g.builtinConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	if g.variant == VariantClassic {
		cfg.Features = config.TetrisFeatures{}
	}
	g.cfg = cfg
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.rounds = 0
	g.paused = false
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < g.minWidth() || g.screenH < g.minHeight()

	g.newSession(cfg.HighScore)
}

// newSession starts a fresh round, carrying the high score.
func (g *Game) newSession(highScore int) {
	s, err := engine.New(g.cfg.Engine(), rand.New(rand.NewSource(g.rng.Int63())))
	if err != nil {
		// Loaded config already validated; defaults are always valid.
		g.cfgErr = err
		g.cfg = g.builtinConfig()
		s = engine.MustNew(g.cfg.Engine(), rand.New(rand.NewSource(g.rng.Int63())))
	}
	s.SetHighScore(highScore)
	g.session = s
	g.runTicks = 0
	g.snap = s.Tick(0)
}

// nowMs is the engine clock derived from unpaused ticks.
func (g *Game) nowMs() int64 {
	return g.runTicks * 1000 / int64(g.tickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart: the abandoned round counts as finished.
	if input.Has(core.ActionRestart) {
		var events []core.Event
		if ev, ok := g.EndRound(); ok {
			events = append(events, ev)
		}
		g.rounds++
		g.newSession(g.snap.HighScore)
		g.paused = false
		return core.StepResult{State: g.State(), Events: events}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		// Presses are dropped; releases still end holds.
		g.applyReleases(input)
		return core.StepResult{State: g.State()}
	}

	g.runTicks++
	now := g.nowMs()
	g.applyInput(input, now)
	g.snap = g.session.Tick(now)

	return core.StepResult{State: g.State(), Events: g.translateEvents()}
}

// applyInput issues engine commands. Presses are applied before releases so
// a press and release in the same frame still moves once.
func (g *Game) applyInput(input core.InputFrame, now int64) {
	if input.Has(core.ActionLeft) {
		g.session.HoldStart(engine.DirLeft, now)
	}
	if input.Has(core.ActionRight) {
		g.session.HoldStart(engine.DirRight, now)
	}
	if input.Has(core.ActionRotate) {
		g.session.Rotate()
	}
	if input.Has(core.ActionDown) {
		g.session.SoftDrop()
	}
	if input.Has(core.ActionHardDrop) {
		g.session.HardDrop()
	}
	g.applyReleases(input)
}

func (g *Game) applyReleases(input core.InputFrame) {
	if input.Has(core.ActionReleaseLeft) {
		g.session.HoldEnd(engine.DirLeft)
	}
	if input.Has(core.ActionReleaseRight) {
		g.session.HoldEnd(engine.DirRight)
	}
}

func (g *Game) translateEvents() []core.Event {
	var out []core.Event
	for _, e := range g.session.DrainEvents() {
		switch e.Kind {
		case engine.EventTopOut:
			g.rounds++
			out = append(out, core.Event{Kind: core.EventRoundOver, Score: e.Value, Lines: e.Lines, Level: e.Level})
		case engine.EventLinesCleared:
			out = append(out, core.Event{Kind: core.EventLinesCleared, Score: e.Score, Value: e.Value})
		case engine.EventLevelUp:
			out = append(out, core.Event{Kind: core.EventLevelUp, Score: e.Score, Value: e.Value})
		}
	}
	return out
}

// State returns the current game state. A top-out resets the board and
// play continues, so GameOver is never set.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.snap.Score,
		HighScore: g.snap.HighScore,
		Paused:    g.paused,
	}
}

// EndRound reports the round in progress as a RoundOver event. Rounds
// without points are not reported.
func (g *Game) EndRound() (core.Event, bool) {
	if g.session == nil || g.snap.Score == 0 {
		return core.Event{}, false
	}
	return core.Event{
		Kind:  core.EventRoundOver,
		Score: g.snap.Score,
		Lines: g.snap.Lines,
		Level: g.snap.Level,
	}, true
}

// ReleaseAfterMs is how long the host waits for a repeated direction key
// before reporting a release.
func (g *Game) ReleaseAfterMs() int64 {
	return g.cfg.Input.ReleaseAfterMs
}

// IsTooSmall returns whether the screen cannot fit the board.
func (g *Game) IsTooSmall() bool {
	return g.tooSmall
}
