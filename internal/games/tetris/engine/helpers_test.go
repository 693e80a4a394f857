package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// seqRand returns its values in order, cycling.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

func always(i int) *seqRand {
	return &seqRand{vals: []int{i}}
}

const (
	shapeT = iota
	shapeO
	shapeL
	shapeJ
	shapeI
	shapeS
	shapeZ
)

func newSession(t *testing.T, cfg Config, rng Rand) *Session {
	t.Helper()
	s, err := New(cfg, rng)
	require.NoError(t, err)
	return s
}

// gridFrom parses rows of '.' (empty) and digits.
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, g.Cols(), "row %d", y)
		for x, ch := range row {
			if ch != '.' {
				g.Set(x, y, int(ch-'0'))
			}
		}
	}
	return g
}

func gridString(g *Grid) string {
	var sb strings.Builder
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			v := g.At(x, y)
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + v))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func shapeByName(name string) Shape {
	for _, s := range StandardShapes() {
		if s.Name == name {
			return s
		}
	}
	panic("unknown shape " + name)
}
