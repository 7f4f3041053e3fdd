package analyzer

import (
	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// detectRepeats finds repeated-substring patterns using a greedy pass
// (longest base unit) and a lazy pass (shortest base unit), skipping
// lazy matches that duplicate an already-found greedy one at the same
// span with the same base. Go's RE2-based regexp package does not
// support backreferences, so both passes are implemented here as an
// explicit base-length scan rather than the classic (.+)\1+ / (.+?)\1+
// regex approach.
func detectRepeats(_ *store.Store, password string) ([]match.Match, error) {
	runes := []rune(password)
	if len(runes) < 2 {
		return nil, nil
	}

	var matches []match.Match
	matches = append(matches, findRepeats(runes, true)...)

	lazy := findRepeats(runes, false)
	for _, lm := range lazy {
		dup := false
		for _, gm := range matches {
			if gm.I == lm.I && gm.J == lm.J && gm.Repeat.BaseToken == lm.Repeat.BaseToken {
				dup = true
				break
			}
		}
		if !dup {
			matches = append(matches, lm)
		}
	}
	return matches, nil
}

// findRepeats scans for maximal runs of a repeated base unit by trying
// every base length at every start position: greedy prefers the
// longest base that still tiles the run, lazy prefers the shortest.
func findRepeats(runes []rune, greedy bool) []match.Match {
	n := len(runes)
	var matches []match.Match

	i := 0
	for i < n {
		best := -1 // base length of the best repeat starting at i
		bestEnd := i

		maxBase := (n - i) / 2
		if greedy {
			for baseLen := maxBase; baseLen >= 1; baseLen-- {
				if end := repeatExtent(runes, i, baseLen); end > i+baseLen {
					best = baseLen
					bestEnd = end
					break
				}
			}
		} else {
			for baseLen := 1; baseLen <= maxBase; baseLen++ {
				if end := repeatExtent(runes, i, baseLen); end > i+baseLen {
					best = baseLen
					bestEnd = end
					break
				}
			}
		}

		if best == -1 {
			i++
			continue
		}

		base := string(runes[i : i+best])
		full := runes[i:bestEnd]
		repeatCount := len(full) / best

		matches = append(matches, match.Match{
			Kind:  match.KindRepeat,
			Token: string(full),
			I:     i,
			J:     bestEnd - 1,
			Repeat: &match.RepeatDetail{
				BaseToken:   base,
				RepeatCount: repeatCount,
			},
		})
		i = bestEnd
	}
	return matches
}

// repeatExtent returns the end index (exclusive) of the maximal run
// starting at i whose repeating unit is runes[i:i+baseLen], or i+baseLen
// if the unit doesn't repeat at all (a one-time occurrence, i.e. not a
// match).
func repeatExtent(runes []rune, i, baseLen int) int {
	n := len(runes)
	end := i + baseLen
	for end+baseLen <= n {
		tiles := true
		for k := 0; k < baseLen; k++ {
			if runes[end+k] != runes[i+k] {
				tiles = false
				break
			}
		}
		if !tiles {
			break
		}
		end += baseLen
	}
	return end
}
