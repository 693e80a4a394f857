package engine

import "fmt"

// Collide reports whether placing p at pos overlaps a locked cell or leaves
// the grid. Rows above the top edge count as outside.
func Collide(p *Piece, pos Position, g *Grid) bool {
	hit := false
	p.each(func(x, y, _ int) bool {
		gx, gy := x+pos.X, y+pos.Y
		if !g.InBounds(gx, gy) || g.cells[gy][gx] != 0 {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// Merge writes the occupied cells of p into g at pos. The caller must have
// checked Collide first; an out-of-bounds or occupied target panics.
func Merge(p *Piece, pos Position, g *Grid) {
	p.each(func(x, y, v int) bool {
		gx, gy := x+pos.X, y+pos.Y
		if !g.InBounds(gx, gy) {
			panic(fmt.Sprintf("engine: merge out of bounds at (%d,%d) on %dx%d grid", gx, gy, g.cols, g.rows))
		}
		if g.cells[gy][gx] != 0 {
			panic(fmt.Sprintf("engine: merge onto occupied cell (%d,%d)", gx, gy))
		}
		g.cells[gy][gx] = v
		return true
	})
}
