package estimate

import (
	"math"
	"math/big"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// estimateKeyboardWalk scores a keyboard-walk match with zxcvbn's
// spatial guess formula: sum, over every possible walk length up to the
// match's own length, of the number of ways to place its turns times
// the branching factor raised to the turn count, then applies a
// shifted-character multiplier. Guess counts from this formula grow
// combinatorially but stay within float64 precision for any realistic
// password length.
func estimateKeyboardWalk(s *store.Store, m *match.Match) error {
	k := m.Keyboard
	stats, err := s.GraphStats(k.Graph)
	if err != nil {
		return err
	}

	length := len([]rune(m.Token))
	guesses := spatialGuesses(length, k.Turns, k.ShiftedCount, stats.StartingPositions, stats.AvgDegree)
	m.Guesses = floatToBigInt(guesses)
	return nil
}

func spatialGuesses(length, turns, shifted, startingPositions int, avgDegree float64) float64 {
	guesses := 0.0
	for walkLen := 2; walkLen <= length; walkLen++ {
		possibleTurns := turns
		if walkLen-1 < possibleTurns {
			possibleTurns = walkLen - 1
		}
		for t := 1; t <= possibleTurns; t++ {
			comb := binomialFloat(walkLen-1, t-1)
			guesses += comb * float64(startingPositions) * math.Pow(avgDegree, float64(t))
		}
	}

	if shifted > 0 {
		u := length - shifted
		if shifted == 0 || u == 0 {
			guesses *= 2
		} else {
			sum := 0.0
			limit := shifted
			if u < limit {
				limit = u
			}
			for k := 1; k <= limit; k++ {
				sum += binomialFloat(shifted+u, k)
			}
			guesses *= sum
		}
	}

	if guesses < 1 {
		return 1
	}
	return guesses
}

func binomialFloat(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	f, _ := new(big.Float).SetInt(new(big.Int).Binomial(int64(n), int64(k))).Float64()
	return f
}

// floatToBigInt converts a non-negative float64 guess count to a
// *big.Int, flooring at 1.
func floatToBigInt(f float64) *big.Int {
	if f < 1 {
		f = 1
	}
	bi, _ := big.NewFloat(f).Int(nil)
	if bi.Sign() < 1 {
		return big.NewInt(1)
	}
	return bi
}
