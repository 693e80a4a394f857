package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/cozy-tetris/internal/registry"
	"github.com/vovakirdan/cozy-tetris/internal/stats"
	"github.com/vovakirdan/cozy-tetris/internal/storage"
)

const (
	minWidthForStats = 84  // the stats panel sits beside the table from here
	statsPanelWidth  = 26
	maxScores        = 100 // rounds loaded per variant
)

// scoreOrder is how the loaded rounds are ranked.
type scoreOrder int

const (
	byScore scoreOrder = iota
	byLines
	byRecent
)

func (o scoreOrder) String() string {
	switch o {
	case byLines:
		return "lines"
	case byRecent:
		return "most recent"
	default:
		return "score"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Sort key.Binding
	Help key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Sort, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev, k.Sort},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "switch variant")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "previous variant")),
		Sort: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the recorded rounds of one variant at a time,
// with summary statistics over every round of that variant.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	order    scoreOrder

	store   *storage.Store
	rounds  []storage.ScoreEntry
	summary stats.Summary
	best    *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width  int
	height int

	quitting  bool
	goingBack bool
	embedded  bool // the parent polls IsGoingBack instead of the program quitting
}

// NewScoreboardModel creates a scoreboard opened on the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForStats
}

func (m ScoreboardModel) variantID() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

// newTable sizes the columns to the space left by the stats panel.
// Player absorbs the spare width up to 20 cells.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 9},
		{Title: "Lines", Width: 6},
		{Title: "Lvl", Width: 4},
		{Title: "Player", Width: 10},
		{Title: "Played", Width: 12},
	}
	const player = 4

	avail := m.width - 6
	if m.wide() {
		avail -= statsPanelWidth + 4
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := avail - used; spare > 0 {
		columns[player].Width = min(columns[player].Width+spare, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#1E1E2E")).
		Background(lipgloss.Color("#F5C2E7")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the current variant's rounds and statistics from the store.
func (m *ScoreboardModel) load() {
	m.rounds, m.summary, m.best = nil, stats.Summary{}, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variantID()
		if rounds, err := m.store.TopScores(id, maxScores); err == nil {
			m.rounds = rounds
		}
		if values, err := m.store.ScoreValues(id); err == nil {
			m.summary = stats.Summarize(values)
		}
		if gs, err := m.store.GetGameStats(id); err == nil && gs.GamesCount > 0 {
			m.best = gs
		}
	}
	m.sortRounds()
}

// sortRounds ranks the loaded rounds by the current order and refills the
// table. Ties keep the store's order.
func (m *ScoreboardModel) sortRounds() {
	slices.SortStableFunc(m.rounds, func(a, b storage.ScoreEntry) int {
		switch m.order {
		case byLines:
			return cmp.Compare(b.Lines, a.Lines)
		case byRecent:
			return b.CreatedAt.Compare(a.CreatedAt)
		default:
			return cmp.Compare(b.Score, a.Score)
		}
	})

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			stats.Int(r.Score),
			fmt.Sprintf("%d", r.Lines),
			fmt.Sprintf("%d", r.Level),
			player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.sortRounds()
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.switchVariant(1)
	case key.Matches(msg, m.keys.Prev):
		m.switchVariant(-1)
	case key.Matches(msg, m.keys.Sort):
		m.order = (m.order + 1) % 3
		m.sortRounds()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ScoreboardModel) switchVariant(delta int) {
	n := len(m.variants)
	if n < 2 {
		return
	}
	m.current = (m.current + delta + n) % n
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5C2E7"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString(centerStyled(title, "H I G H   S C O R E S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderSwitcher(), m.width))
	b.WriteString("\n")
	b.WriteString(centerStyled(dim, "ranked by "+m.order.String(), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	board := box.Render(m.renderRounds())
	if m.wide() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", box.Width(statsPanelWidth).Render(m.renderStats()))
	} else {
		board += "\n" + dim.Render(m.summary.Line())
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, board))

	b.WriteString("\n\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

// renderSwitcher shows every variant with the current one highlighted.
func (m ScoreboardModel) renderSwitcher() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1E1E2E")).
		Background(lipgloss.Color("#A6E3A1")).
		Padding(0, 1)
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)

	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		name := runewidth.Truncate(v.Title, 18, "…")
		if i == m.current {
			parts[i] = active.Render(name)
		} else {
			parts[i] = idle.Render(name)
		}
	}
	return strings.Join(parts, " ")
}

func (m ScoreboardModel) renderRounds() string {
	if len(m.rounds) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No rounds recorded yet.\nClear some lines to get on the board!")
	}
	return m.table.View()
}

// renderStats lists the summary rows and the best lines and level.
func (m ScoreboardModel) renderStats() string {
	if m.summary.Count == 0 {
		return "Statistics\n\nno rounds"
	}
	keys, vals := m.summary.Rows()
	if m.best != nil {
		keys = append(keys, "Best lines", "Best level")
		vals["Best lines"] = stats.Int(m.best.MaxLines)
		vals["Best level"] = stats.Int(m.best.MaxLevel)
	}

	keyW := 0
	for _, k := range keys {
		keyW = max(keyW, runewidth.StringWidth(k))
	}
	valW := statsPanelWidth - 2 - keyW - 1

	var b strings.Builder
	b.WriteString("Statistics\n\n")
	for _, k := range keys {
		v := runewidth.Truncate(vals[k], valW, "…")
		b.WriteString(runewidth.FillRight(k, keyW))
		b.WriteString(" ")
		b.WriteString(runewidth.FillLeft(v, valW))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
