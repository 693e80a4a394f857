package engine

import (
	"errors"
	"fmt"
)

// Session owns the full game state: grid, active and next pieces, stats,
// gravity timing and the held direction. It is not safe for concurrent use;
// hosts apply commands between ticks from a single goroutine.
type Session struct {
	cfg  Config
	rng  Rand
	grid *Grid

	piece *Piece
	pos   Position
	next  *Piece

	stats Stats

	dropInterval int64
	dropCounter  int64
	lastTime     int64
	started      bool

	hold   holdState
	events []Event
}

// New validates cfg and creates a session with the first piece spawned.
func New(cfg Config, rng Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("engine: nil random source")
	}
	shapes := make([]Shape, len(cfg.Shapes))
	for i, s := range cfg.Shapes {
		shapes[i] = NewPiece(s).shape()
	}
	cfg.Shapes = shapes
	cfg.Palette = append([]string(nil), cfg.Palette...)

	s := &Session{
		cfg:   cfg,
		rng:   rng,
		grid:  NewGrid(cfg.Cols, cfg.Rows),
		stats: NewStats(),
	}
	s.dropInterval = cfg.Gravity.Interval(1)
	s.next = s.randomPiece()
	s.spawn()
	return s, nil
}

// MustNew is New for configurations known to be valid.
func MustNew(cfg Config, rng Rand) *Session {
	s, err := New(cfg, rng)
	if err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	return s
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Stats returns the current score progression.
func (s *Session) Stats() Stats {
	return s.stats
}

// Grid returns the live grid. Callers must not mutate it.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Active returns the active piece and its position.
func (s *Session) Active() (*Piece, Position) {
	return s.piece, s.pos
}

// Next returns the piece that spawns after the active one.
func (s *Session) Next() *Piece {
	return s.next
}

// DropInterval returns the current gravity interval in milliseconds.
func (s *Session) DropInterval() int64 {
	return s.dropInterval
}

// HeldDirection returns the direction currently held, if any.
func (s *Session) HeldDirection() Direction {
	return s.hold.dir
}

// SetHighScore seeds the high score from persistent storage. Lower values
// than the current high score are ignored.
func (s *Session) SetHighScore(v int) {
	if v > s.stats.HighScore {
		s.stats.HighScore = v
	}
}

// DrainEvents returns events recorded since the last call and clears them.
func (s *Session) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *Session) emit(kind EventKind, value int) {
	s.events = append(s.events, Event{Kind: kind, Value: value, Score: s.stats.Score})
}

func (s *Session) randomPiece() *Piece {
	return NewPiece(s.cfg.Shapes[s.rng.Intn(len(s.cfg.Shapes))])
}

// spawn promotes the next piece and rolls a new one. A collision at the
// spawn point ends the round: the grid is cleared and stats reset.
func (s *Session) spawn() {
	s.piece = s.next
	s.next = s.randomPiece()
	s.pos = Position{X: s.cfg.Cols/2 - s.piece.Width()/2, Y: 0}
	if Collide(s.piece, s.pos, s.grid) {
		s.events = append(s.events, Event{
			Kind:  EventTopOut,
			Value: s.stats.Score,
			Score: s.stats.Score,
			Lines: s.stats.Lines,
			Level: s.stats.Level,
		})
		s.grid.Clear()
		s.stats.Reset()
		s.dropInterval = s.cfg.Gravity.Interval(1)
	}
}

// lock merges the active piece, sweeps, scores and spawns the next piece.
func (s *Session) lock() {
	Merge(s.piece, s.pos, s.grid)
	s.emit(EventLock, s.piece.Color())
	rows := Sweep(s.grid)
	_, levelUp := s.stats.Apply(rows)
	if rows > 0 {
		s.emit(EventLinesCleared, rows)
	}
	if levelUp {
		s.dropInterval = s.cfg.Gravity.Interval(s.stats.Level)
		s.emit(EventLevelUp, s.stats.Level)
	}
	s.spawn()
}

// Move shifts the active piece one column in dir if the target is free.
func (s *Session) Move(dir Direction) bool {
	if dir == DirNone {
		return false
	}
	to := s.pos.Add(int(dir), 0)
	if Collide(s.piece, to, s.grid) {
		return false
	}
	s.pos = to
	return true
}

// MoveLeft shifts the active piece one column left.
func (s *Session) MoveLeft() bool {
	return s.Move(DirLeft)
}

// MoveRight shifts the active piece one column right.
func (s *Session) MoveRight() bool {
	return s.Move(DirRight)
}

// Rotate turns the active piece clockwise with wall kicks.
func (s *Session) Rotate() bool {
	pos, ok := RotateWithKick(s.piece, s.pos, s.grid)
	s.pos = pos
	return ok
}

// SoftDrop moves the active piece down one row, locking it when blocked.
// Returns true if the piece locked. The gravity counter restarts.
func (s *Session) SoftDrop() bool {
	s.dropCounter = 0
	to := s.pos.Add(0, 1)
	if Collide(s.piece, to, s.grid) {
		s.lock()
		return true
	}
	s.pos = to
	return false
}

// HardDrop moves the active piece to the lowest free row and locks it.
// Returns the number of rows fallen.
func (s *Session) HardDrop() int {
	n := 0
	for !s.SoftDrop() {
		n++
	}
	return n
}

// HoldStart begins holding dir at nowMs and moves immediately. Pressing the
// held direction again is ignored. Without hold-repeat it only moves.
func (s *Session) HoldStart(dir Direction, nowMs int64) {
	if !s.cfg.Features.HoldRepeat {
		s.Move(dir)
		return
	}
	if s.hold.press(dir, nowMs) {
		s.Move(dir)
	}
}

// HoldEnd releases dir if it is the held direction.
func (s *Session) HoldEnd(dir Direction) {
	s.hold.release(dir)
}

// Tick advances the clock to nowMs, applies auto-repeat and gravity, and
// returns the resulting snapshot. The first tick only anchors the clock.
// A timestamp earlier than the previous one counts as no elapsed time.
func (s *Session) Tick(nowMs int64) Snapshot {
	dt := int64(0)
	if s.started {
		dt = nowMs - s.lastTime
		if dt < 0 {
			dt = 0
		}
	}
	s.started = true
	s.lastTime = nowMs
	s.dropCounter += dt

	if s.cfg.Features.HoldRepeat && s.hold.due(nowMs, s.cfg.DASMs, s.cfg.ARRMs) {
		s.Move(s.hold.dir)
	}

	if s.dropCounter > s.dropInterval {
		s.SoftDrop()
	}
	return s.Snapshot()
}

// Resync sets the clock reference without accruing elapsed time. Hosts call
// it when resuming from a pause.
func (s *Session) Resync(nowMs int64) {
	s.started = true
	s.lastTime = nowMs
}
