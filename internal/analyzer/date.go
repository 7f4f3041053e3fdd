package analyzer

import (
	"strconv"
	"time"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// dateSeparators are the punctuation characters recognized between
// date parts.
var dateSeparators = []string{"/", "-", "."}

const (
	minDateTokenLen = 4
	maxDateTokenLen = 10
)

// detectDates finds calendar-date patterns across no-separator and
// separator-delimited substrings of every plausible length, including
// a duplicate-prone 8-digit MMDDYYYY/DDMMYYYY parse and a sliding
// 2-digit year pivot.
func detectDates(_ *store.Store, password string) ([]match.Match, error) {
	runes := []rune(password)
	n := len(runes)

	var raw []match.Match
	for i := 0; i < n; i++ {
		maxLen := maxDateTokenLen
		if n-i < maxLen {
			maxLen = n - i
		}
		for length := minDateTokenLen; length <= maxLen; length++ {
			j := i + length - 1
			token := string(runes[i : j+1])
			raw = append(raw, tryParseDate(token, i, j)...)
		}
	}
	return deduplicateDates(raw), nil
}

func tryParseDate(token string, i, j int) []match.Match {
	var results []match.Match

	if isAllDigits(token) {
		results = append(results, parseNoSeparator(token, i, j)...)
	}

	for _, sep := range dateSeparators {
		if !containsByte(token, sep[0]) {
			continue
		}
		parts := splitOn(token, sep[0])
		switch len(parts) {
		case 3:
			results = append(results, parseWithSeparator(parts, sep, i, j, token)...)
		case 2:
			results = append(results, parseWithSeparator2Part(parts, sep, i, j, token)...)
		}
	}
	return results
}

func parseNoSeparator(digits string, i, j int) []match.Match {
	var results []match.Match
	n := len(digits)

	switch n {
	case 8:
		m, d, y := atoi(digits[0:2]), atoi(digits[2:4]), atoi(digits[4:8])
		if validDate(y, m, d) {
			results = append(results, makeDateMatch(digits, i, j, y, m, d, "", false))
		}
		// DDMMYYYY: d2 is the first digit pair and m2 the second, i.e.
		// the MMDDYYYY reading with day and month swapped. The m2 != m
		// guard skips it only when both pairs are equal, which is exactly
		// when it would repeat the MMDDYYYY match above.
		d2, m2, y2 := atoi(digits[0:2]), atoi(digits[2:4]), atoi(digits[4:8])
		if m2 != m && validDate(y2, m2, d2) {
			results = append(results, makeDateMatch(digits, i, j, y2, m2, d2, "", false))
		}
		y3, m3, d3 := atoi(digits[0:4]), atoi(digits[4:6]), atoi(digits[6:8])
		if validDate(y3, m3, d3) {
			results = append(results, makeDateMatch(digits, i, j, y3, m3, d3, "", false))
		}

	case 6:
		m, d, y := atoi(digits[0:2]), atoi(digits[2:4]), expandYear(atoi(digits[4:6]))
		if validDate(y, m, d) {
			results = append(results, makeDateMatch(digits, i, j, y, m, d, "", false))
		}
		d2, m2, y2 := atoi(digits[0:2]), atoi(digits[2:4]), expandYear(atoi(digits[4:6]))
		if m2 != m && validDate(y2, m2, d2) {
			results = append(results, makeDateMatch(digits, i, j, y2, m2, d2, "", false))
		}
		y3, m3, d3 := expandYear(atoi(digits[0:2])), atoi(digits[2:4]), atoi(digits[4:6])
		if validDate(y3, m3, d3) {
			results = append(results, makeDateMatch(digits, i, j, y3, m3, d3, "", false))
		}

	case 4:
		m, d := atoi(digits[0:2]), atoi(digits[2:4])
		if m >= 1 && m <= 12 && d >= 1 && d <= 31 {
			results = append(results, makeDateMatch(digits, i, j, 0, m, d, "", false))
		}
		d2, m2 := atoi(digits[0:2]), atoi(digits[2:4])
		if m2 != m && m2 >= 1 && m2 <= 12 && d2 >= 1 && d2 <= 31 {
			results = append(results, makeDateMatch(digits, i, j, 0, m2, d2, "", false))
		}
	}
	return results
}

func parseWithSeparator(parts []string, sep string, i, j int, token string) []match.Match {
	var results []match.Match
	nums := make([]int, 3)
	for k, p := range parts {
		v, ok := parseInt(p)
		if !ok {
			return nil
		}
		nums[k] = v
	}
	a, b, c := nums[0], nums[1], nums[2]

	if (c >= 1900 && c <= 2099) || (c >= 0 && c <= 99) {
		y := c
		if y < 100 {
			y = expandYear(c)
		}
		if validDate(y, a, b) {
			results = append(results, makeDateMatch(token, i, j, y, a, b, sep, true))
		}
		if a != b && validDate(y, b, a) {
			results = append(results, makeDateMatch(token, i, j, y, b, a, sep, true))
		}
	}

	if a >= 1900 && a <= 2099 {
		if validDate(a, b, c) {
			results = append(results, makeDateMatch(token, i, j, a, b, c, sep, true))
		}
	}
	return results
}

func parseWithSeparator2Part(parts []string, sep string, i, j int, token string) []match.Match {
	a, ok1 := parseInt(parts[0])
	b, ok2 := parseInt(parts[1])
	if !ok1 || !ok2 {
		return nil
	}
	if a >= 1 && a <= 12 && b >= 1 && b <= 31 {
		return []match.Match{makeDateMatch(token, i, j, 0, a, b, sep, true)}
	}
	return nil
}

func makeDateMatch(token string, i, j, year, month, day int, sep string, hasSep bool) match.Match {
	return match.Match{
		Kind:  match.KindDate,
		Token: token,
		I:     i,
		J:     j,
		Date: &match.DateDetail{
			Year:         year,
			Month:        month,
			Day:          day,
			Separator:    sep,
			HasSeparator: hasSep,
		},
	}
}

func validDate(year, month, day int) bool {
	if year != 0 && (year < 1900 || year > 2099) {
		return false
	}
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// expandYear maps a 2-digit year to 4 digits using a sliding pivot of
// (current year % 100) + 10, the same window zxcvbn uses.
func expandYear(twoDigit int) int {
	pivot := time.Now().Year()%100 + 10
	if twoDigit <= pivot {
		return 2000 + twoDigit
	}
	return 1900 + twoDigit
}

func deduplicateDates(matches []match.Match) []match.Match {
	type key struct {
		i, j, y, m, d int
		sep           string
	}
	seen := make(map[key]bool)
	var out []match.Match
	for _, mm := range matches {
		k := key{mm.I, mm.J, mm.Date.Year, mm.Date.Month, mm.Date.Day, mm.Date.Separator}
		if !seen[k] {
			seen[k] = true
			out = append(out, mm)
		}
	}
	return out
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

func splitOn(s string, sep byte) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}
