package analyzer

import (
	"strings"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// maxLeetCombinations caps the Cartesian product of de-l33t substitution
// options explored per substring, to bound detection at exponential
// worst case (a token with many substitutable characters).
const maxLeetCombinations = 1024

// leetPosition is one substitutable character within a candidate token:
// its offset, the l33t character found there, and the original
// characters it could stand in for.
type leetPosition struct {
	offset    int
	char      rune
	originals []rune
}

// detectLeet finds l33t-substituted dictionary words: for every
// substring containing at least one substitutable character, it tries
// de-l33t combinations (including "leave as-is" per position) and checks
// the wordlists for the resulting de-l33ted word, up to a 1024-
// combination cap per substring. Substitution ordering tries the
// original character last, biasing the cap toward trying more
// substitutions first.
func detectLeet(s *store.Store, password string) ([]match.Match, error) {
	inverse, err := s.InverseL33tTable()
	if err != nil {
		return nil, err
	}
	wordlists, err := s.AllWordlists()
	if err != nil {
		return nil, err
	}

	runes := []rune(password)
	n := len(runes)
	var matches []match.Match

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			token := runes[i : j+1]

			var positions []leetPosition
			for pos, r := range token {
				if origs, ok := inverse[r]; ok {
					positions = append(positions, leetPosition{offset: pos, char: r, originals: origs})
				}
			}
			if len(positions) == 0 {
				continue
			}

			for _, combo := range leetCombinations(positions) {
				chars := []rune(strings.ToLower(string(token)))
				subTable := make(map[rune]rune)
				anySub := false

				for idx, pos := range positions {
					replacement := combo[idx]
					if replacement != pos.char {
						chars[pos.offset] = replacement
						subTable[pos.char] = replacement
						anySub = true
					}
				}
				if !anySub {
					continue
				}

				deLeeted := string(chars)
				for _, name := range store.WordlistNames {
					wl := wordlists[name]
					rank := wl.Rank(deLeeted)
					if rank <= 0 {
						continue
					}
					matches = append(matches, match.Match{
						Kind:  match.KindLeet,
						Token: string(token),
						I:     i,
						J:     j,
						Leet: &match.LeetDetail{
							Word:       deLeeted,
							Rank:       rank,
							Dictionary: name,
							SubTable:   subTable,
						},
					})
				}
			}
		}
	}
	return matches, nil
}

// leetCombinations enumerates the Cartesian product of, for each
// position, [originals..., char] (the original char kept last), capped
// at maxLeetCombinations entries. Because the original char is tried
// last per position, the truncated prefix of the product favors
// combinations with more substitutions made.
func leetCombinations(positions []leetPosition) [][]rune {
	options := make([][]rune, len(positions))
	for i, p := range positions {
		opts := make([]rune, 0, len(p.originals)+1)
		opts = append(opts, p.originals...)
		opts = append(opts, p.char)
		options[i] = opts
	}

	total := 1
	for _, opts := range options {
		total *= len(opts)
		if total > maxLeetCombinations {
			break
		}
	}

	limit := total
	if limit > maxLeetCombinations {
		limit = maxLeetCombinations
	}

	combos := make([][]rune, 0, limit)
	indices := make([]int, len(options))
	for len(combos) < limit {
		combo := make([]rune, len(options))
		for i, opts := range options {
			combo[i] = opts[indices[i]]
		}
		combos = append(combos, combo)

		// Odometer increment, rightmost index fastest — matches
		// itertools.product's iteration order.
		pos := len(indices) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(options[pos]) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return combos
}
