package engine

// Grid is the matrix of locked cells. A cell holds 0 when empty or the
// palette index of the piece that locked there. Its dimensions are fixed at
// construction.
type Grid struct {
	cols  int
	rows  int
	cells [][]int
}

// NewGrid creates an empty grid. Dimensions must be positive.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows}
	g.cells = make([][]int, rows)
	for y := range g.cells {
		g.cells[y] = make([]int, cols)
	}
	return g
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the value at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[y][x]
}

// Set writes a value at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y, v int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = v
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for y := range g.cells {
		clear(g.cells[y])
	}
}

// Empty reports whether no cell is occupied.
func (g *Grid) Empty() bool {
	for _, row := range g.cells {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	for _, v := range g.cells[y] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{cols: g.cols, rows: g.rows, cells: make([][]int, g.rows)}
	for y, row := range g.cells {
		c.cells[y] = append([]int(nil), row...)
	}
	return c
}

// Cells returns a deep copy of the cell matrix indexed [row][col].
func (g *Grid) Cells() [][]int {
	return g.Clone().cells
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.cols != o.cols || g.rows != o.rows {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}
