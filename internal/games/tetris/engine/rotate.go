package engine

// RotateWithKick rotates p clockwise and resolves a collision by trying the
// horizontal offsets 1, -2, 3, -4, ... applied cumulatively to pos.X, so the
// candidate columns are x+1, x-1, x+2, x-2 and so on. The search stops when
// the next offset's magnitude would exceed the piece width; the rotation is
// then undone and the original position returned with ok=false.
//
// Kicks are bounded by piece width only. Collide rejects any placement
// outside the grid, so no accepted position can leave the board.
func RotateWithKick(p *Piece, pos Position, g *Grid) (Position, bool) {
	startX := pos.X
	offset := 1
	p.Rotate()
	for Collide(p, pos, g) {
		pos.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
		if abs(offset) > p.Width() {
			p.Rotate()
			p.Rotate()
			p.Rotate()
			pos.X = startX
			return pos, false
		}
	}
	return pos, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
