package analyzer

import (
	"unicode"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

const minSequenceLength = 3

// allowedSequenceDeltas are the constant-delta steps that count as a
// sequence: +-1 (consecutive) and +-2 (alternating).
var allowedSequenceDeltas = map[int]bool{1: true, -1: true, 2: true, -2: true}

// detectSequences finds maximal constant-delta runs, e.g. "abcd",
// "4321", "aceg".
func detectSequences(_ *store.Store, password string) ([]match.Match, error) {
	runes := []rune(password)
	n := len(runes)
	if n < minSequenceLength {
		return nil, nil
	}

	var matches []match.Match
	i := 0
	for i < n-1 {
		delta := int(runes[i+1]) - int(runes[i])
		if !allowedSequenceDeltas[delta] {
			i++
			continue
		}

		j := i + 2
		for j < n && int(runes[j])-int(runes[j-1]) == delta {
			j++
		}

		length := j - i
		if length >= minSequenceLength {
			token := runes[i:j]
			matches = append(matches, match.Match{
				Kind:  match.KindSequence,
				Token: string(token),
				I:     i,
				J:     j - 1,
				Sequence: &match.SequenceDetail{
					Name:      classifySequence(token[0]),
					Ascending: delta > 0,
					Delta:     delta,
				},
			})
			i = j
		} else {
			i++
		}
	}
	return matches, nil
}

func classifySequence(r rune) string {
	switch {
	case unicode.IsDigit(r):
		return "digit"
	case unicode.IsLower(r):
		return "lower"
	case unicode.IsUpper(r):
		return "upper"
	default:
		return "other"
	}
}
