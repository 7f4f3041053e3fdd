// Package decompose implements the dynamic-programming engine that
// tiles a password into the non-overlapping sequence of matches an
// attacker would need the fewest total guesses to reach, adapted from
// zxcvbn's own minimum-guesses DP recurrence.
//
// Go has arbitrary-precision integers only via math/big, so every
// guess count here is a *big.Int rather than a native int — a long,
// high-cardinality password's brute-force guess count overflows 64
// bits quickly.
package decompose

import (
	"math"
	"math/big"
	"sort"

	"github.com/passlab/crackestimate/internal/charset"
	"github.com/passlab/crackestimate/internal/match"
)

// Result is the outcome of tiling a password: the total guess count of
// the cheapest non-overlapping cover, the matches that make it up (in
// left-to-right order, with brute-force filler for any gap), and its
// base-10 logarithm for downstream formatting.
type Result struct {
	Guesses      *big.Int
	Sequence     []match.Match
	Log10Guesses float64
}

// MinimumGuessDecomposition finds the cheapest way to tile password
// using the supplied (already-scored) matches plus single-character
// brute-force fallback. Matches with a nil Guesses (estimator failures)
// or a non-positive Guesses are excluded, as if they were never found.
//
// The recurrence: min_guesses[k] is the lowest total guess count to
// cover password[0..k]. It starts at the brute-force cost of the whole
// prefix, is improved by extending min_guesses[k-1] with a single
// brute-forced character, and is improved again by every match ending
// at k — combining the match's own guess count with
// min_guesses[m.I-1] (or just the match's count, if it starts at 0).
// Ties keep whichever candidate was found first, matching zxcvbn's
// strict less-than comparison.
func MinimumGuessDecomposition(password string, matches []match.Match) Result {
	runes := []rune(password)
	n := len(runes)
	if n == 0 {
		return Result{Guesses: big.NewInt(0), Log10Guesses: 0}
	}

	matchesByEnd := make(map[int][]match.Match)
	for _, m := range matches {
		if m.Guesses == nil || m.Guesses.Sign() <= 0 {
			continue
		}
		matchesByEnd[m.J] = append(matchesByEnd[m.J], m)
	}

	minGuesses := make([]*big.Int, n)
	bestSequence := make([][]match.Match, n)

	for k := 0; k < n; k++ {
		bfToken := string(runes[:k+1])
		bf := charset.BruteForceGuesses(bfToken)
		minGuesses[k] = bf
		bestSequence[k] = []match.Match{bruteForceMatch(bfToken, 0, k)}

		if k > 0 {
			charToken := string(runes[k])
			charBF := charset.BruteForceGuesses(charToken)
			extendTotal := new(big.Int).Mul(minGuesses[k-1], charBF)
			if extendTotal.Cmp(minGuesses[k]) < 0 {
				minGuesses[k] = extendTotal
				bestSequence[k] = appendMatch(bestSequence[k-1], bruteForceMatch(charToken, k, k))
			}
		}

		for _, m := range matchesByEnd[k] {
			var total *big.Int
			if m.I == 0 {
				total = new(big.Int).Set(m.Guesses)
			} else {
				total = new(big.Int).Mul(minGuesses[m.I-1], m.Guesses)
			}
			if total.Cmp(minGuesses[k]) < 0 {
				minGuesses[k] = total
				if m.I == 0 {
					bestSequence[k] = []match.Match{m}
				} else {
					bestSequence[k] = appendMatch(bestSequence[m.I-1], m)
				}
			}
		}
	}

	final := fillGaps(runes, bestSequence[n-1])
	total := minGuesses[n-1]

	f, _ := new(big.Float).SetInt(total).Float64()
	if f < 1 {
		f = 1
	}

	return Result{
		Guesses:      total,
		Sequence:     final,
		Log10Guesses: math.Log10(f),
	}
}

func appendMatch(seq []match.Match, m match.Match) []match.Match {
	out := make([]match.Match, len(seq)+1)
	copy(out, seq)
	out[len(seq)] = m
	return out
}

func bruteForceMatch(token string, i, j int) match.Match {
	return match.Match{
		Kind:    match.KindBruteForce,
		Token:   token,
		I:       i,
		J:       j,
		Guesses: charset.BruteForceGuesses(token),
		BruteForce: &match.BruteForceDetail{
			Cardinality: charset.Cardinality(token),
		},
	}
}

// fillGaps inserts brute-force matches for any stretch of the password
// not covered by sequence. In practice every k's default already covers
// [0,k] with a single brute-force match, so bestSequence[n-1] is always
// already contiguous — this pass is a defensive no-op kept as a
// belt-and-suspenders gap fill.
func fillGaps(runes []rune, sequence []match.Match) []match.Match {
	if len(sequence) == 0 {
		return sequence
	}

	sorted := make([]match.Match, len(sequence))
	copy(sorted, sequence)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].I < sorted[b].I })

	var filled []match.Match
	lastEnd := -1
	for _, m := range sorted {
		if m.I > lastEnd+1 {
			gapToken := string(runes[lastEnd+1 : m.I])
			filled = append(filled, bruteForceMatch(gapToken, lastEnd+1, m.I-1))
		}
		filled = append(filled, m)
		lastEnd = m.J
	}
	if lastEnd < len(runes)-1 {
		gapToken := string(runes[lastEnd+1:])
		filled = append(filled, bruteForceMatch(gapToken, lastEnd+1, len(runes)-1))
	}
	return filled
}
