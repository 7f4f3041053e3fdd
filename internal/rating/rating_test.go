package rating

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		seconds float64
		want    int
	}{
		{0, 0},
		{59, 0},
		{60, 1},
		{86_399, 1},
		{86_400, 2},
		{31_557_599, 2},
		{31_557_600, 3},
		{31_557_600 * 99, 3},
		{31_557_600 * 100, 4},
	}
	for _, tt := range tests {
		if got := Compute(tt.seconds); got != tt.want {
			t.Errorf("Compute(%v) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label(0); got != "CRITICAL" {
		t.Errorf("Label(0) = %q, want CRITICAL", got)
	}
	if got := Label(99); got != "UNKNOWN" {
		t.Errorf("Label(99) = %q, want UNKNOWN", got)
	}
}
