package estimate

import (
	"math/big"

	"github.com/passlab/crackestimate/internal/charset"
	"github.com/passlab/crackestimate/internal/store"
)

// WholePasswordResult is the outcome of one whole-password attack
// strategy (brute force or mask), compared directly against the DP
// decomposition's total cost to pick the attacker's cheapest path.
type WholePasswordResult struct {
	AttackName string
	Guesses    *big.Int
	Details    map[string]any
}

// BruteForce estimates the cost of trying every string of the
// password's length over its observed character classes.
func BruteForce(password string) WholePasswordResult {
	if password == "" {
		return WholePasswordResult{AttackName: "Brute Force", Guesses: big.NewInt(0), Details: map[string]any{"cardinality": 0, "length": 0}}
	}
	guesses := charset.BruteForceGuesses(password)
	return WholePasswordResult{
		AttackName: "Brute Force",
		Guesses:    guesses,
		Details: map[string]any{
			"cardinality": charset.Cardinality(password),
			"length":      len([]rune(password)),
		},
	}
}

// Mask estimates the cost of a mask attack: an attacker who tries
// structural templates (?l?l?l?d?d, ...) in a fixed priority order
// derived from observed password statistics, falling through to the
// password's own keyspace (halved, as an "average position within the
// bucket" approximation) if its exact mask appears in the library, or
// to the full keyspace if it never appears.
func Mask(s *store.Store, password string) (WholePasswordResult, error) {
	if password == "" {
		return WholePasswordResult{AttackName: "Mask Attack", Guesses: nil}, nil
	}

	library, err := s.MaskLibrary()
	if err != nil {
		return WholePasswordResult{}, err
	}

	passwordMask := charset.Mask(password)
	keyspace := maskKeyspace(password)

	cumulative := new(big.Int)
	for _, entry := range library {
		if entry.Mask == passwordMask {
			half := new(big.Int).Div(keyspace, big.NewInt(2))
			cumulative.Add(cumulative, half)
			return WholePasswordResult{
				AttackName: "Mask Attack",
				Guesses:    cumulative,
				Details:    map[string]any{"mask": passwordMask, "keyspace": keyspace},
			}, nil
		}
		cumulative.Add(cumulative, big.NewInt(entry.Keyspace))
	}

	return WholePasswordResult{
		AttackName: "Mask Attack",
		Guesses:    keyspace,
		Details:    map[string]any{"mask": passwordMask, "keyspace": keyspace},
	}, nil
}

// maskKeyspace is the product of per-position character-class sizes for
// password's mask, i.e. the brute-force count restricted to the
// observed class sequence rather than the password's overall
// cardinality. It equals BruteForceGuesses only when the password uses
// a single class; with mixed classes it is smaller (e.g. "aB": 26*26
// versus 52*52). Kept separate to mirror the original's distinct
// mask_guesses helper.
func maskKeyspace(password string) *big.Int {
	guesses := big.NewInt(1)
	for _, r := range password {
		size := charset.MaskSizes[charset.ClassifyMask(r)]
		guesses.Mul(guesses, big.NewInt(int64(size)))
	}
	return guesses
}
