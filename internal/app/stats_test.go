package app

import "testing"

func TestBarWidth(t *testing.T) {
	tests := []struct {
		name string
		n    int
		max  int
		want int
	}{
		{"max fills the bar", 30, 30, 20},
		{"half", 15, 30, 10},
		{"small count keeps a block", 1, 30, 1},
		{"zero stays empty", 0, 30, 0},
		{"single month", 1, 1, 20},
	}
	for _, tt := range tests {
		if got := barWidth(tt.n, tt.max); got != tt.want {
			t.Errorf("%s: barWidth(%d, %d) = %d, want %d", tt.name, tt.n, tt.max, got, tt.want)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	if got := monthLabel("2024-03"); got != "Mar 2024" {
		t.Errorf("monthLabel(2024-03) = %q", got)
	}
	// A malformed key falls through unchanged.
	if got := monthLabel("garbage"); got != "garbage" {
		t.Errorf("monthLabel(garbage) = %q", got)
	}
}
