package estimate

import (
	"math/big"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// estimateDictionary scores a dictionary match as its rank in the
// wordlist, scaled by the uppercase-layout multiplier and doubled if
// the match was found reversed.
func estimateDictionary(_ *store.Store, m *match.Match) error {
	d := m.Dictionary
	guesses := big.NewInt(int64(d.Rank))
	guesses.Mul(guesses, uppercaseVariations(m.Token))
	if d.Reversed {
		guesses.Mul(guesses, big.NewInt(2))
	}
	m.Guesses = atLeastOne(guesses)
	return nil
}
