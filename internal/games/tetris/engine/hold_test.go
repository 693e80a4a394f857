package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// holdFor presses right at t=0 and ticks every millisecond through end.
func holdFor(t *testing.T, s *Session, end int64) int {
	t.Helper()
	_, start := s.Active()
	s.Tick(0)
	s.HoldStart(DirRight, 0)
	for now := int64(1); now <= end; now++ {
		s.Tick(now)
	}
	_, pos := s.Active()
	return pos.X - start.X
}

func TestHoldRepeatBeforeDAS(t *testing.T) {
	s := newSession(t, DefaultConfig(), always(shapeO))
	assert.Equal(t, 1, holdFor(t, s, 149))
}

func TestHoldRepeatAfterDAS(t *testing.T) {
	s := newSession(t, DefaultConfig(), always(shapeO))
	_, start := s.Active()
	s.Tick(0)
	s.HoldStart(DirRight, 0)

	s.Tick(151)
	_, pos := s.Active()
	assert.Equal(t, 2, pos.X-start.X, "initial move plus the first repeat")

	s.Tick(182)
	_, pos = s.Active()
	assert.Equal(t, 3, pos.X-start.X, "next repeat after more than ARR")
}

func TestHoldRepeatDASPlusThreeARR(t *testing.T) {
	s := newSession(t, DefaultConfig(), always(shapeO))
	assert.Equal(t, 4, holdFor(t, s, DefaultDASMs+3*DefaultARRMs))
}

func TestHoldRepeatNeedsMoreThanARR(t *testing.T) {
	s := newSession(t, DefaultConfig(), always(shapeO))
	_, start := s.Active()
	s.Tick(0)
	s.HoldStart(DirRight, 0)
	s.Tick(150)
	s.Tick(180)
	_, pos := s.Active()
	assert.Equal(t, 2, pos.X-start.X)
}

func TestHoldRelease(t *testing.T) {
	s := newSession(t, DefaultConfig(), always(shapeO))
	_, start := s.Active()
	s.Tick(0)
	s.HoldStart(DirRight, 0)
	s.HoldEnd(DirLeft)
	assert.Equal(t, DirRight, s.HeldDirection(), "releasing the other direction is ignored")
	s.HoldEnd(DirRight)
	assert.Equal(t, DirNone, s.HeldDirection())
	for now := int64(1); now < 400; now++ {
		s.Tick(now)
	}
	_, pos := s.Active()
	assert.Equal(t, 1, pos.X-start.X)
}

func TestHoldPressIsEdgeTriggered(t *testing.T) {
	s := newSession(t, DefaultConfig(), always(shapeO))
	_, start := s.Active()
	s.HoldStart(DirRight, 0)
	s.HoldStart(DirRight, 10)
	s.HoldStart(DirRight, 20)
	_, pos := s.Active()
	assert.Equal(t, 1, pos.X-start.X)
}

func TestHoldOppositeDirectionOverrides(t *testing.T) {
	s := newSession(t, DefaultConfig(), always(shapeO))
	_, start := s.Active()
	s.Tick(0)
	s.HoldStart(DirRight, 0)
	for now := int64(1); now <= 100; now++ {
		s.Tick(now)
	}
	s.HoldStart(DirLeft, 100)
	assert.Equal(t, DirLeft, s.HeldDirection())
	_, pos := s.Active()
	assert.Equal(t, 0, pos.X-start.X, "fresh immediate move in the new direction")

	// The new hold waits its own DAS.
	for now := int64(101); now < 250; now++ {
		s.Tick(now)
	}
	_, pos = s.Active()
	assert.Equal(t, 0, pos.X-start.X)
	s.Tick(250)
	_, pos = s.Active()
	assert.Equal(t, -1, pos.X-start.X)
}

func TestHoldWithoutRepeatFeature(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.HoldRepeat = false
	s := newSession(t, cfg, always(shapeO))
	assert.Equal(t, 1, holdFor(t, s, 500))
	assert.Equal(t, DirNone, s.HeldDirection())
}
