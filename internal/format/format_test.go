package format

import (
	"math"
	"testing"
)

func TestTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "instant"},
		{math.Inf(1), "infinite"},
		{0.5, "< 1 second"},
		{30, "30 seconds"},
		{1800, "30.0 minutes"},
		{90000, "25.0 hours"},
		{5 * secondsPerDay, "5 days"},
		{40 * secondsPerDay, "1.3 months"},
		{secondsPerYear * 50, "50.0 years"},
		{secondsPerYear * 500, "500 years"},
		{secondsPerYear * 5000, "5 thousand years"},
		{secondsPerYear * 5_000_000, "5 million years"},
		{secondsPerYear * 5_000_000_000, "5 billion years"},
	}
	for _, tt := range tests {
		if got := Time(tt.seconds); got != tt.want {
			t.Errorf("Time(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
