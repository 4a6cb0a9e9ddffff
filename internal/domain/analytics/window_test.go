package analytics

import "testing"

func TestTrailingWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		i, size   int
		wantStart int
		wantEnd   int
	}{
		{name: "first position is empty", i: 0, size: 5, wantStart: 0, wantEnd: 0},
		{name: "clipped near season start", i: 3, size: 5, wantStart: 0, wantEnd: 3},
		{name: "exactly full", i: 5, size: 5, wantStart: 0, wantEnd: 5},
		{name: "full window slides", i: 9, size: 5, wantStart: 4, wantEnd: 9},
		{name: "zero size", i: 4, size: 0, wantStart: 4, wantEnd: 4},
		{name: "negative index", i: -1, size: 5, wantStart: 0, wantEnd: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			start, end := TrailingWindow(tc.i, tc.size)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("TrailingWindow(%d, %d) = [%d, %d), want [%d, %d)", tc.i, tc.size, start, end, tc.wantStart, tc.wantEnd)
			}
			if end > tc.i && tc.i >= 0 {
				t.Fatalf("window [%d, %d) contains position %d", start, end, tc.i)
			}
		})
	}
}
