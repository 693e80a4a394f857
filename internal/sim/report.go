package sim

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/cozy-tetris/internal/stats"
)

var reportLang = language.English

// Report renders the result as text tables: the run overview followed by
// one table each for score, lines and level.
func (r Result) Report() string {
	p := message.NewPrinter(reportLang)

	var b strings.Builder
	keys := []string{"Game", "Games", "Ticks per game", "Rounds", "Elapsed"}
	vals := map[string]string{
		"Game":           r.GameID,
		"Games":          p.Sprintf("%d", r.Games),
		"Ticks per game": p.Sprintf("%d", r.Ticks),
		"Rounds":         p.Sprintf("%d", len(r.Rounds)),
		"Elapsed":        stats.Duration(r.Elapsed, r.Games*r.Ticks, "ticks"),
	}
	b.WriteString(stats.Table("simulation", keys, vals))

	for _, part := range []struct {
		name string
		s    stats.Summary
	}{
		{"score", r.Score},
		{"lines", r.Lines},
		{"level", r.Level},
	} {
		k, v := part.s.Rows()
		b.WriteString(stats.Table(fmt.Sprintf("%s per round", part.name), k, v))
	}
	return b.String()
}
