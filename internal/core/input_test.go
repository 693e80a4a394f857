package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionRotate)
	if !f.Has(ActionLeft) || !f.Has(ActionRotate) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionRotate) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionReleaseRight, "ReleaseRight"},
		{ActionHardDrop, "HardDrop"},
		{ActionPause, "Pause"},
		{Action(999), "Unknown"},
	}
	for _, tc := range tests {
		if tc.action.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.action.String(), tc.expected)
		}
	}
}

func TestStepResultRoundOvers(t *testing.T) {
	r := StepResult{Events: []Event{
		{Kind: EventLinesCleared, Value: 2},
		{Kind: EventRoundOver, Score: 1500},
		{Kind: EventLevelUp, Value: 3},
	}}
	overs := r.RoundOvers()
	if len(overs) != 1 || overs[0].Score != 1500 {
		t.Errorf("RoundOvers() = %+v, expected one event with score 1500", overs)
	}
}
