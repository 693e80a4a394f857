package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cozy-tetris/internal/core"
	"github.com/vovakirdan/cozy-tetris/internal/registry"
	"github.com/vovakirdan/cozy-tetris/internal/storage"
)

// releaseTimer is implemented by games that want direction key releases
// reported after a custom silence window.
type releaseTimer interface {
	ReleaseAfterMs() int64
}

// defaultReleaseMs is used for games without a release window of their own.
const defaultReleaseMs = 90

// Options tune a Model beyond the game and store.
type Options struct {
	Player    string      // recorded with saved scores; empty for local play
	Logger    *log.Logger // nil discards
	AllowBack bool        // Back leaves the game instead of pausing
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *Renderer
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	hold       *keyHold
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// The stored high score for the game is passed to Reset.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	if store != nil {
		hs, err := store.HighScore(game.ID())
		if err != nil {
			opts.Logger.Warn("could not load high score", "game", game.ID(), "error", err)
		}
		cfg.HighScore = hs
	}

	game.Reset(cfg)
	if tg, ok := game.(registry.Tuned); ok {
		if err := tg.ConfigError(); err != nil {
			opts.Logger.Warn("game config rejected, using defaults", "game", game.ID(), "error", err)
		}
	}

	renderer := NewRenderer()
	if p, ok := game.(registry.Paletted); ok {
		renderer.SetPalette(p.Palette())
	}

	window := int64(defaultReleaseMs)
	if rt, ok := game.(releaseTimer); ok {
		window = rt.ReleaseAfterMs()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   renderer,
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		hold:       newKeyHold(window),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.endRound()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.opts.AllowBack {
			m.endRound()
			m.backToMenu = true
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)

	case isDirection(action):
		m.hold.press(action, &m.inputFrame)

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games that cannot adapt start over at the new size.
	m.endRound()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.step()
	return m, tickCmd(m.config.TickRate)
}

// step runs one simulation tick with the accumulated input.
func (m *Model) step() {
	m.hold.advance(int64(1000/m.config.TickRate), &m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.RoundOvers() {
		m.saveRound(ev)
	}

	m.inputFrame.Clear()
}

// endRound records the round in progress when leaving it.
func (m *Model) endRound() {
	if re, ok := m.game.(registry.RoundEnder); ok {
		if ev, ok := re.EndRound(); ok {
			m.saveRound(ev)
		}
		return
	}
	if m.gameState.Score > 0 {
		m.saveRound(core.Event{Kind: core.EventRoundOver, Score: m.gameState.Score})
	}
}

// saveRound persists a finished round. Failures are logged and play continues.
func (m *Model) saveRound(ev core.Event) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRound(storage.RoundResult{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  ev.Score,
		Lines:  ev.Lines,
		Level:  ev.Level,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.opts.Logger.Debug("round saved", "game", m.game.ID(), "player", m.opts.Player, "score", ev.Score)
}

// saveScreenshot writes the current screen to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir, err := screenshotDir()
	if err == nil {
		var path string
		path, err = writeScreenshot(dir, m.game.ID(), m.screen, time.Now())
		if err == nil {
			m.opts.Logger.Debug("screenshot saved", "path", path)
			return
		}
	}
	m.opts.Logger.Warn("could not save screenshot", "error", err)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
