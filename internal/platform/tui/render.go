package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/cozy-tetris/internal/core"
)

// ansiColors maps the predefined core colors to terminal color codes.
var ansiColors = []struct {
	color core.Color
	code  string
}{
	{core.ColorRed, "1"},
	{core.ColorGreen, "2"},
	{core.ColorYellow, "3"},
	{core.ColorBlue, "4"},
	{core.ColorMagenta, "5"},
	{core.ColorCyan, "6"},
	{core.ColorWhite, "7"},
	{core.ColorBrightRed, "9"},
	{core.ColorBrightGreen, "10"},
	{core.ColorBrightYellow, "11"},
	{core.ColorBrightBlue, "12"},
	{core.ColorBrightMagenta, "13"},
	{core.ColorBrightCyan, "14"},
	{core.ColorBrightWhite, "15"},
	{core.ColorOrange, "208"},
	{core.ColorGray, "245"},
}

// Renderer converts Screen buffers to styled strings. Games with a palette
// get one style per palette entry on top of the ANSI colors.
type Renderer struct {
	styles *intmap.Map[core.Color, lipgloss.Style]
	plain  lipgloss.Style
}

// NewRenderer creates a renderer with the ANSI color styles.
func NewRenderer() *Renderer {
	r := &Renderer{
		styles: intmap.New[core.Color, lipgloss.Style](len(ansiColors) + 8),
		plain:  lipgloss.NewStyle(),
	}
	for _, c := range ansiColors {
		r.styles.Put(c.color, lipgloss.NewStyle().Foreground(lipgloss.Color(c.code)))
	}
	return r
}

// SetPalette registers hex colors for core.CustomColor(i). Entry 0 is the
// empty cell and renders with the default style.
func (r *Renderer) SetPalette(hexes []string) {
	for i, hex := range hexes {
		c := core.CustomColor(i)
		if i == 0 || hex == "" {
			r.styles.Del(c)
			continue
		}
		r.styles.Put(c, lipgloss.NewStyle().Foreground(lipgloss.Color(hex)))
	}
}

// Style returns the style used for c.
func (r *Renderer) Style(c core.Color) lipgloss.Style {
	if s, ok := r.styles.Get(c); ok {
		return s
	}
	return r.plain
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
