package engine

// Snapshot is an immutable copy of the session state for renderers.
type Snapshot struct {
	Grid     [][]int // [row][col]
	Active   [][]int
	Position Position
	Ghost    Position
	HasGhost bool
	Next     [][]int // nil without preview

	Score        int
	HighScore    int
	Lines        int
	Level        int
	DropInterval int64
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:         s.grid.Cells(),
		Active:       s.piece.Matrix(),
		Position:     s.pos,
		Score:        s.stats.Score,
		HighScore:    s.stats.HighScore,
		Lines:        s.stats.Lines,
		Level:        s.stats.Level,
		DropInterval: s.dropInterval,
	}
	if s.cfg.Features.Ghost {
		snap.Ghost = GhostPosition(s.piece, s.pos, s.grid)
		snap.HasGhost = true
	}
	if s.cfg.Features.Preview {
		snap.Next = s.next.Matrix()
	}
	return snap
}

// GhostPosition returns the lowest row p can fall to from pos.
func GhostPosition(p *Piece, pos Position, g *Grid) Position {
	for !Collide(p, pos.Add(0, 1), g) {
		pos.Y++
	}
	return pos
}

// ActiveCells yields the grid coordinates of the active piece's cells
// with their color.
func (snap Snapshot) ActiveCells(fn func(x, y, v int)) {
	for y, row := range snap.Active {
		for x, v := range row {
			if v != 0 {
				fn(x+snap.Position.X, y+snap.Position.Y, v)
			}
		}
	}
}

// GhostCells yields the grid coordinates of the ghost piece. It yields
// nothing when the snapshot has no ghost.
func (snap Snapshot) GhostCells(fn func(x, y int)) {
	if !snap.HasGhost {
		return
	}
	for y, row := range snap.Active {
		for x, v := range row {
			if v != 0 {
				fn(x+snap.Ghost.X, y+snap.Ghost.Y)
			}
		}
	}
}
