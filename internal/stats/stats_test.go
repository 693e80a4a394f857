package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarizeSingle(t *testing.T) {
	s := Summarize([]float64{300})
	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 300, s.Mean, 1e-9)
	assert.Zero(t, s.StdDev)
	assert.Equal(t, CI{Lo: 300, Hi: 300}, s.MeanCI)
	assert.InDelta(t, 300, s.Median, 1e-9)
}

func TestSummarizeSample(t *testing.T) {
	values := []float64{800, 100, 0, 300, 500}
	s := Summarize(values)

	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 340, s.Mean, 1e-9)
	// Sample standard deviation.
	assert.InDelta(t, 320.94, s.StdDev, 0.01)
	assert.InDelta(t, 0, s.Min, 1e-9)
	assert.InDelta(t, 300, s.Median, 1e-9)
	assert.InDelta(t, 800, s.P90, 1e-9)
	assert.InDelta(t, 800, s.Max, 1e-9)
	assert.Less(t, s.MeanCI.Lo, s.Mean)
	assert.Greater(t, s.MeanCI.Hi, s.Mean)

	// Input order is preserved.
	assert.Equal(t, []float64{800, 100, 0, 300, 500}, values)
}

func TestInt(t *testing.T) {
	assert.Equal(t, "0", Int(0))
	assert.Equal(t, "1,234,567", Int(1234567))
}

func TestLine(t *testing.T) {
	assert.Equal(t, "no rounds", Summary{}.Line())
	line := Summarize([]float64{100, 300}).Line()
	assert.Contains(t, line, "2 rounds")
	assert.Contains(t, line, "best 300")
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "used: 2.00 seconds, 500 rounds/sec", Duration(2*time.Second, 1000, "rounds"))
}

func TestTableAlignment(t *testing.T) {
	keys, vals := Summarize([]float64{100, 1200, 3400}).Rows()
	out := Table("tetris", keys, vals)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(keys)+4)
	width := runewidth.StringWidth(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, runewidth.StringWidth(l), "line %q", l)
	}
	assert.Contains(t, out, "| Max ")
	assert.Contains(t, out, "3,400")
}

func TestTableWideTitle(t *testing.T) {
	out := Table("a rather long title for two cells", []string{"k"}, map[string]string{"k": "v"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := runewidth.StringWidth(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, runewidth.StringWidth(l), "line %q", l)
	}
}
