package sim

import "testing"

func TestLifeIndicatorIndex(t *testing.T) {
	tests := []struct {
		player    PlayerID
		remaining int
		index     int
		ok        bool
	}{
		{Player1, 2, 2, true},
		{Player1, 1, 1, true},
		{Player1, 0, 0, true},
		{Player2, 2, 0, true},
		{Player2, 1, 1, true},
		{Player2, 0, 0, true},
		{Player1, 3, 0, false},
		{Player2, -1, 0, false},
	}

	for _, tc := range tests {
		index, ok := LifeIndicatorIndex(tc.player, tc.remaining)
		if index != tc.index || ok != tc.ok {
			t.Errorf("LifeIndicatorIndex(%d, %d) = (%d, %v), expected (%d, %v)",
				tc.player, tc.remaining, index, ok, tc.index, tc.ok)
		}
	}
}
