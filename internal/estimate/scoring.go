// Package estimate computes, per detected pattern, how many guesses an
// attacker modeling that pattern would need before reaching the
// password — the segment-level half of the two-stage estimation
// pipeline. The whole-password strategies (brute force, mask) live
// alongside the segment estimators but are not in the registry and are
// not panic-isolated: callers invoke BruteForce and Mask directly, and
// Mask returns the mask library's load error to its caller.
package estimate

import (
	"math/big"
	"strings"
	"unicode"
)

// uppercaseVariations computes the zxcvbn uppercase-layout multiplier
// for a token: 1 if all-lowercase, 2 if all-uppercase or only the first
// letter is capitalized, else the number of distinct ways to choose
// which positions are uppercase among the mixed-case positions.
func uppercaseVariations(token string) *big.Int {
	lower := strings.ToLower(token)
	upper := strings.ToUpper(token)
	if token == lower {
		return big.NewInt(1)
	}
	if token == upper {
		return big.NewInt(2)
	}

	runes := []rune(token)
	if len(runes) > 1 && unicode.IsUpper(runes[0]) {
		rest := string(runes[1:])
		if rest == strings.ToLower(rest) {
			return big.NewInt(2)
		}
	}

	n := len(runes)
	u := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			u++
		}
	}
	limit := u
	if n-u < limit {
		limit = n - u
	}

	total := new(big.Int)
	for k := 1; k <= limit; k++ {
		total.Add(total, new(big.Int).Binomial(int64(n), int64(k)))
	}
	return total
}

// leetVariations computes the l33t substitution multiplier for a
// de-substituted word: for each character, the attacker tries the
// original plus every known l33t rendering, so the total is the
// product of (1 + substitution count) across all characters.
func leetVariations(word string, forwardTable map[rune][]rune) *big.Int {
	if word == "" {
		return big.NewInt(1)
	}
	variations := big.NewInt(1)
	for _, r := range word {
		nSubs := len(forwardTable[r])
		variations.Mul(variations, big.NewInt(int64(1+nSubs)))
	}
	if variations.Sign() <= 0 {
		return big.NewInt(1)
	}
	return variations
}

// atLeastOne floors a guess count at 1: zxcvbn-derived estimators treat
// a computed guess number of 0 as a modeling edge case, not a free win.
func atLeastOne(n *big.Int) *big.Int {
	if n.Sign() < 1 {
		return big.NewInt(1)
	}
	return n
}
