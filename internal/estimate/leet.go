package estimate

import (
	"math/big"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// estimateLeet scores an l33t match as its rank, scaled by the
// uppercase multiplier and the l33t-substitution multiplier.
func estimateLeet(s *store.Store, m *match.Match) error {
	l := m.Leet
	table, err := s.L33tTable()
	if err != nil {
		return err
	}

	guesses := big.NewInt(int64(l.Rank))
	guesses.Mul(guesses, uppercaseVariations(m.Token))
	guesses.Mul(guesses, leetVariations(l.Word, table))
	m.Guesses = atLeastOne(guesses)
	return nil
}
