package core

// Color represents a foreground color for a screen cell.
// Values below ColorCustomBase are ANSI colors; values from ColorCustomBase
// upward index a palette supplied by the game.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ColorCustomBase is the first palette color.
const ColorCustomBase Color = 64

// CustomColor returns the color for palette entry i.
func CustomColor(i int) Color {
	return ColorCustomBase + Color(i)
}

// IsCustom reports whether c refers to a palette entry.
func (c Color) IsCustom() bool {
	return c >= ColorCustomBase
}

// PaletteIndex returns the palette entry c refers to, or -1 for ANSI colors.
func (c Color) PaletteIndex() int {
	if !c.IsCustom() {
		return -1
	}
	return int(c - ColorCustomBase)
}
