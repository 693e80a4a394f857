package core

import "testing"

func TestCustomColor(t *testing.T) {
	tests := []struct {
		color  Color
		custom bool
		index  int
	}{
		{ColorDefault, false, -1},
		{ColorGray, false, -1},
		{CustomColor(0), true, 0},
		{CustomColor(7), true, 7},
	}

	for _, tc := range tests {
		if tc.color.IsCustom() != tc.custom {
			t.Errorf("IsCustom(%d) = %v, expected %v", tc.color, tc.color.IsCustom(), tc.custom)
		}
		if tc.color.PaletteIndex() != tc.index {
			t.Errorf("PaletteIndex(%d) = %d, expected %d", tc.color, tc.color.PaletteIndex(), tc.index)
		}
	}
}
