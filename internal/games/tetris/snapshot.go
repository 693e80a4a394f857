package tetris

import "github.com/vovakirdan/cozy-tetris/internal/games/tetris/engine"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Variant Variant
	ClockMs int64 // engine clock; frozen while paused
	Rounds  int   // finished rounds (top-outs and restarts)
	Paused  bool
	Engine  engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant,
		ClockMs: g.nowMs(),
		Rounds:  g.rounds,
		Paused:  g.paused,
		Engine:  g.snap,
	}
}
