// Package format renders a crack time in seconds as a human-readable
// string, e.g. "3.2 hours" or "4 million years".
package format

import (
	"fmt"
	"math"
)

const (
	secondsPerHour = 3600
	secondsPerDay  = 86_400
	secondsPerYear = 31_557_600
	daysPerMonth   = 30.44
)

// Time converts seconds into a human-scaled string, bucketing from
// instant/infinite through seconds, minutes, hours, days-or-months,
// years, and thousand/million/billion years.
func Time(seconds float64) string {
	switch {
	case seconds == 0:
		return "instant"
	case math.IsInf(seconds, 1):
		return "infinite"
	case seconds < 1:
		return "< 1 second"
	case seconds < 60:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.1f minutes", seconds/60)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.1f hours", seconds/secondsPerHour)
	case seconds < secondsPerYear:
		days := seconds / secondsPerDay
		if days < 30 {
			return fmt.Sprintf("%.0f days", days)
		}
		return fmt.Sprintf("%.1f months", days/daysPerMonth)
	}

	years := seconds / secondsPerYear
	switch {
	case years < 100:
		return fmt.Sprintf("%.1f years", years)
	case years < 1000:
		return fmt.Sprintf("%.0f years", years)
	case years < 1_000_000:
		return fmt.Sprintf("%.0f thousand years", years/1000)
	case years < 1_000_000_000:
		return fmt.Sprintf("%.0f million years", years/1_000_000)
	default:
		return fmt.Sprintf("%.0f billion years", years/1_000_000_000)
	}
}
