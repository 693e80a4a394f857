package engine

// EventKind identifies what happened during a command or tick.
type EventKind int

const (
	EventLock EventKind = iota + 1
	EventLinesCleared
	EventLevelUp
	EventTopOut
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLock:
		return "lock"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventTopOut:
		return "top_out"
	default:
		return "unknown"
	}
}

// Event is a notable state change. Value depends on Kind: cleared rows for
// EventLinesCleared, the new level for EventLevelUp, the final score for
// EventTopOut, the locked piece color for EventLock.
type Event struct {
	Kind  EventKind
	Value int
	Score int // score after the event

	// Round totals, set only on EventTopOut.
	Lines int
	Level int
}
