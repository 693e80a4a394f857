package engine

import "fmt"

// Shape is a fixed piece template. Cells is a square matrix where 0 is an
// empty sub-cell and every other cell holds the same color index.
type Shape struct {
	Name  string
	Cells [][]int
}

// Size returns the side length of the template matrix.
func (s Shape) Size() int {
	return len(s.Cells)
}

// Color returns the template's color index, or 0 for an empty template.
func (s Shape) Color() int {
	return MatrixColor(s.Cells)
}

func (s Shape) validate() error {
	n := len(s.Cells)
	if n == 0 || n > MaxShapeSize {
		return fmt.Errorf("%w: size %d", ErrInvalidShape, n)
	}
	color := 0
	for y, row := range s.Cells {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidShape, y, len(row), n)
		}
		for _, v := range row {
			if v == 0 {
				continue
			}
			if v < 0 || v >= PaletteSize {
				return fmt.Errorf("%w: color %d out of range", ErrInvalidShape, v)
			}
			if color != 0 && v != color {
				return fmt.Errorf("%w: mixed colors %d and %d", ErrInvalidShape, color, v)
			}
			color = v
		}
	}
	if color == 0 {
		return fmt.Errorf("%w: no occupied cells", ErrInvalidShape)
	}
	return nil
}

// StandardShapes returns fresh copies of the seven tetromino templates.
// Color indices: T=1, O=2, L=3, J=4, I=5, S=6, Z=7.
func StandardShapes() []Shape {
	return []Shape{
		{Name: "T", Cells: [][]int{
			{0, 0, 0},
			{1, 1, 1},
			{0, 1, 0},
		}},
		{Name: "O", Cells: [][]int{
			{2, 2},
			{2, 2},
		}},
		{Name: "L", Cells: [][]int{
			{0, 3, 0},
			{0, 3, 0},
			{0, 3, 3},
		}},
		{Name: "J", Cells: [][]int{
			{0, 4, 0},
			{0, 4, 0},
			{4, 4, 0},
		}},
		{Name: "I", Cells: [][]int{
			{0, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 5, 0, 0},
			{0, 5, 0, 0},
		}},
		{Name: "S", Cells: [][]int{
			{0, 6, 6},
			{6, 6, 0},
			{0, 0, 0},
		}},
		{Name: "Z", Cells: [][]int{
			{7, 7, 0},
			{0, 7, 7},
			{0, 0, 0},
		}},
	}
}

// DefaultPalette returns the pastel palette. Entry 0 is the background.
func DefaultPalette() []string {
	return []string{
		"#000000",
		"#F7A8B8", // pink
		"#A8DADC", // mint
		"#FFD6A5", // peach
		"#BDB2FF", // lavender
		"#CDB4DB", // mauve
		"#CAFFBF", // light green
		"#BEE7E8", // baby blue
	}
}
