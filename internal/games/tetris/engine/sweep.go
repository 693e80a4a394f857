package engine

// Sweep removes every full row, shifting the rows above it down and
// inserting empty rows at the top. It scans bottom-up and re-examines the
// same index after a removal. Row 0 is never examined. Returns the number of
// rows removed.
func Sweep(g *Grid) int {
	cleared := 0
	for y := g.rows - 1; y > 0; y-- {
		if !g.RowFull(y) {
			continue
		}
		full := g.cells[y]
		copy(g.cells[1:y+1], g.cells[:y])
		clear(full)
		g.cells[0] = full
		cleared++
		y++
	}
	return cleared
}
