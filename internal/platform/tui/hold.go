package tui

import "github.com/vovakirdan/cozy-tetris/internal/core"

// keyHold emulates key releases for direction keys. Terminals only report
// presses, and a held key shows up as a stream of repeated presses, so a
// direction counts as held until no press for it arrives within window.
type keyHold struct {
	window   int64       // ms of silence before a release
	dir      core.Action // ActionLeft, ActionRight or ActionNone
	lastSeen int64
	now      int64
}

func newKeyHold(windowMs int64) *keyHold {
	if windowMs < 0 {
		windowMs = 0
	}
	return &keyHold{window: windowMs}
}

// press records a direction key. Every press reaches the frame; a repeat
// of the held direction is ignored by the engine when it auto-repeats.
func (h *keyHold) press(a core.Action, frame *core.InputFrame) {
	frame.Set(a)
	h.dir = a
	h.lastSeen = h.now
}

// advance moves the clock by dtMs and adds a release to frame once the
// held direction has been silent for the window.
func (h *keyHold) advance(dtMs int64, frame *core.InputFrame) {
	h.now += dtMs
	if h.dir == core.ActionNone {
		return
	}
	if h.now-h.lastSeen < h.window {
		return
	}
	frame.Set(releaseOf(h.dir))
	h.dir = core.ActionNone
}

// held returns the direction currently treated as held.
func (h *keyHold) held() core.Action {
	return h.dir
}

// reset forgets the held direction.
func (h *keyHold) reset() {
	h.dir = core.ActionNone
}

func releaseOf(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionReleaseLeft
	case core.ActionRight:
		return core.ActionReleaseRight
	default:
		return core.ActionNone
	}
}

func isDirection(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}
