package engine

// Direction is a horizontal move direction. Its value is the column delta.
type Direction int

const (
	DirNone  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// holdState implements delayed auto-shift for one held direction.
// lastRepeat of zero means no repeat has happened yet.
type holdState struct {
	dir        Direction
	start      int64
	lastRepeat int64
}

// press starts a hold. It returns false when dir is already held, so the
// caller skips the immediate move. A press of the opposite direction
// replaces the current hold.
func (h *holdState) press(dir Direction, now int64) bool {
	if dir == DirNone || h.dir == dir {
		return false
	}
	h.dir = dir
	h.start = now
	h.lastRepeat = 0
	return true
}

// release clears the hold if it matches dir.
func (h *holdState) release(dir Direction) {
	if h.dir == dir {
		h.dir = DirNone
	}
}

// due reports whether a repeat move should fire at now and records it.
func (h *holdState) due(now, das, arr int64) bool {
	if h.dir == DirNone {
		return false
	}
	if now-h.start < das {
		return false
	}
	if now-h.lastRepeat > arr {
		h.lastRepeat = now
		return true
	}
	return false
}
