package estimate

import (
	"math/big"

	"github.com/passlab/crackestimate/internal/charset"
	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// estimateRepeat scores a repeat match as the brute-force guess count
// of its base unit times how many times that unit repeats — the
// attacker only needs to guess the base, then apply it repeat_count
// times.
func estimateRepeat(_ *store.Store, m *match.Match) error {
	r := m.Repeat
	base := charset.BruteForceGuesses(r.BaseToken)
	r.BaseGuesses = base

	guesses := new(big.Int).Mul(base, big.NewInt(int64(r.RepeatCount)))
	m.Guesses = atLeastOne(guesses)
	return nil
}
