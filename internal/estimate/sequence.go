package estimate

import (
	"math/big"
	"strings"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// wellKnownSequences collapses the guess cost of widely-known runs
// ("abc", "123456", "qwertyuiop", ...) to a small constant base — an
// attacker tries these first regardless of length.
var wellKnownSequences = map[string]bool{
	"0123456789": true, "abcdefghij": true, "qwertyuiop": true,
	"abcdefgh": true, "abcdef": true, "abc": true,
	"123": true, "1234": true, "12345": true, "123456": true,
}

// estimateSequence scores a sequence match as base_alphabet_size *
// length, doubled for a descending run, with well-known runs floored to
// a base of 4 regardless of their natural alphabet size.
func estimateSequence(_ *store.Store, m *match.Match) error {
	seq := m.Sequence
	runes := []rune(m.Token)

	base := 95
	switch seq.Name {
	case "digit":
		base = 10
	case "lower", "upper":
		base = 26
	}
	if wellKnownSequences[strings.ToLower(m.Token)] {
		base = 4
	}

	guesses := big.NewInt(int64(base) * int64(len(runes)))
	if !seq.Ascending {
		guesses.Mul(guesses, big.NewInt(2))
	}
	m.Guesses = atLeastOne(guesses)
	return nil
}
