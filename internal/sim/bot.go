package sim

import (
	"math/rand"

	"github.com/vovakirdan/cozy-tetris/internal/core"
)

// botMoves are the actions the bot picks from, with their relative weights.
var botMoves = []struct {
	action core.Action
	weight int
}{
	{core.ActionLeft, 6},
	{core.ActionRight, 6},
	{core.ActionRotate, 4},
	{core.ActionDown, 3},
	{core.ActionHardDrop, 1},
}

// Bot produces random input frames. A pressed direction is held for a
// random number of ticks and then released, so auto-repeat gets exercised.
type Bot struct {
	rng      *rand.Rand
	every    int // ticks between decisions on average
	held     core.Action
	holdLeft int
	total    int
}

// NewBot creates a bot seeded with seed.
func NewBot(seed int64) *Bot {
	total := 0
	for _, m := range botMoves {
		total += m.weight
	}
	return &Bot{
		rng:   rand.New(rand.NewSource(seed)),
		every: 8,
		total: total,
	}
}

// Next returns the input for the next tick.
func (b *Bot) Next() core.InputFrame {
	frame := core.NewInputFrame()

	if b.held != core.ActionNone {
		b.holdLeft--
		if b.holdLeft <= 0 {
			frame.Set(release(b.held))
			b.held = core.ActionNone
		}
	}

	if b.rng.Intn(b.every) != 0 {
		return frame
	}

	a := b.pick()
	frame.Set(a)
	if a == core.ActionLeft || a == core.ActionRight {
		if b.held != core.ActionNone && b.held != a {
			frame.Set(release(b.held))
		}
		b.held = a
		b.holdLeft = 1 + b.rng.Intn(20)
	}
	return frame
}

func (b *Bot) pick() core.Action {
	n := b.rng.Intn(b.total)
	for _, m := range botMoves {
		if n < m.weight {
			return m.action
		}
		n -= m.weight
	}
	return core.ActionNone
}

func release(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionReleaseLeft
	}
	return core.ActionReleaseRight
}
