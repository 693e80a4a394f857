package engine

// LinesPerLevel is the number of cleared rows needed to gain a level.
const LinesPerLevel = 10

var lineScores = [...]int{0, 100, 300, 500, 800}

// ScoreFor returns the points for clearing rows at once at the given level.
// Counts above four score as four.
func ScoreFor(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	if rows >= len(lineScores) {
		rows = len(lineScores) - 1
	}
	return lineScores[rows] * level
}

// LevelFor returns the level reached after clearing lines rows in total.
func LevelFor(lines int) int {
	return lines/LinesPerLevel + 1
}

// Stats tracks score progression within a session.
type Stats struct {
	Score     int
	Lines     int
	Level     int
	HighScore int
}

// NewStats returns stats for a fresh round.
func NewStats() Stats {
	return Stats{Level: 1}
}

// Apply scores a single sweep and returns the score delta and whether the
// level changed. Score and level both derive from the same row count.
func (s *Stats) Apply(rows int) (int, bool) {
	delta := ScoreFor(rows, s.Level)
	s.Score += delta
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	s.Lines += rows
	level := LevelFor(s.Lines)
	changed := level != s.Level
	s.Level = level
	return delta, changed
}

// Reset starts a new round. HighScore is kept.
func (s *Stats) Reset() {
	s.Score = 0
	s.Lines = 0
	s.Level = 1
}
