package charset

import "math/big"

// BruteForceGuesses returns cardinality(token)^len(token), or 1 for an
// empty token. Arbitrary precision is required because long, high
// cardinality tokens overflow 64 bits quickly.
func BruteForceGuesses(token string) *big.Int {
	if token == "" {
		return big.NewInt(1)
	}
	card := big.NewInt(int64(Cardinality(token)))
	length := big.NewInt(int64(len([]rune(token))))
	result := new(big.Int).Exp(card, length, nil)
	if result.Sign() <= 0 {
		return big.NewInt(1)
	}
	return result
}
