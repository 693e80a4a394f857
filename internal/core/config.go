package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
	HighScore int   // Best stored score, shown and carried by the game
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score seen, including stored ones
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// EventKind identifies a game event reported to the platform.
type EventKind int

const (
	EventNone         EventKind = iota
	EventRoundOver              // a round ended; Score holds its final score
	EventLinesCleared           // Value holds the number of rows
	EventLevelUp                // Value holds the new level
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRoundOver:
		return "RoundOver"
	case EventLinesCleared:
		return "LinesCleared"
	case EventLevelUp:
		return "LevelUp"
	default:
		return "None"
	}
}

// Event is something that happened during a step that the platform may act on,
// such as persisting the score of a finished round.
type Event struct {
	Kind  EventKind
	Score int
	Value int

	// Round totals for EventRoundOver, zero when the game has none.
	Lines int
	Level int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// RoundOvers returns the events that ended a round.
func (r StepResult) RoundOvers() []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == EventRoundOver {
			out = append(out, e)
		}
	}
	return out
}
