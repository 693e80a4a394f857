package engine

// Position is the grid coordinate of a piece's top-left matrix cell.
type Position struct {
	X, Y int
}

// Add returns the position shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Piece is a rotation-mutable copy of a shape template.
type Piece struct {
	name   string
	matrix [][]int
}

// NewPiece copies the template so later rotations never touch it.
func NewPiece(s Shape) *Piece {
	p := &Piece{name: s.Name, matrix: make([][]int, len(s.Cells))}
	for y, row := range s.Cells {
		p.matrix[y] = append([]int(nil), row...)
	}
	return p
}

// Name returns the template name.
func (p *Piece) Name() string {
	return p.name
}

// Width returns the side length of the piece matrix.
func (p *Piece) Width() int {
	return len(p.matrix)
}

// Color returns the palette index shared by every occupied cell.
func (p *Piece) Color() int {
	return MatrixColor(p.matrix)
}

// MatrixColor returns the first non-zero cell of m, or 0 for an empty matrix.
func MatrixColor(m [][]int) int {
	for _, row := range m {
		for _, v := range row {
			if v != 0 {
				return v
			}
		}
	}
	return 0
}

// Rotate turns the matrix 90 degrees clockwise in place: transpose, then
// reverse every row.
func (p *Piece) Rotate() {
	m := p.matrix
	for y := range m {
		for x := 0; x < y; x++ {
			m[x][y], m[y][x] = m[y][x], m[x][y]
		}
	}
	for _, row := range m {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

func (p *Piece) shape() Shape {
	return Shape{Name: p.name, Cells: p.matrix}
}

// Clone returns an independent copy.
func (p *Piece) Clone() *Piece {
	return NewPiece(Shape{Name: p.name, Cells: p.matrix})
}

// Matrix returns a copy of the current cell matrix.
func (p *Piece) Matrix() [][]int {
	return p.Clone().matrix
}

// Equal reports whether two pieces hold the same matrix.
func (p *Piece) Equal(o *Piece) bool {
	if p.Width() != o.Width() {
		return false
	}
	for y := range p.matrix {
		for x := range p.matrix[y] {
			if p.matrix[y][x] != o.matrix[y][x] {
				return false
			}
		}
	}
	return true
}

// each calls fn for every occupied cell with its matrix coordinates.
func (p *Piece) each(fn func(x, y, v int) bool) {
	for y, row := range p.matrix {
		for x, v := range row {
			if v == 0 {
				continue
			}
			if !fn(x, y, v) {
				return
			}
		}
	}
}
