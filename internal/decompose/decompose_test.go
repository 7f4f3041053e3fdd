package decompose

import (
	"math/big"
	"testing"

	"github.com/passlab/crackestimate/internal/match"
)

func TestMinimumGuessDecompositionEmpty(t *testing.T) {
	r := MinimumGuessDecomposition("", nil)
	if r.Guesses.Cmp(big.NewInt(0)) != 0 {
		t.Errorf("Guesses = %v, want 0", r.Guesses)
	}
}

func TestMinimumGuessDecompositionNoMatches(t *testing.T) {
	r := MinimumGuessDecomposition("xqz", nil)
	// falls back entirely to brute force over 3 lowercase letters
	want := big.NewInt(26 * 26 * 26)
	if r.Guesses.Cmp(want) != 0 {
		t.Errorf("Guesses = %v, want %v", r.Guesses, want)
	}
}

func TestMinimumGuessDecompositionPrefersCheapMatch(t *testing.T) {
	// "password" with a single dictionary match covering the whole
	// string at guess count 1 should win over brute force.
	matches := []match.Match{
		{
			Kind:       match.KindDictionary,
			Token:      "password",
			I:          0,
			J:          7,
			Guesses:    big.NewInt(1),
			Dictionary: &match.DictionaryDetail{Word: "password", Rank: 1},
		},
	}
	r := MinimumGuessDecomposition("password", matches)
	if r.Guesses.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("Guesses = %v, want 1", r.Guesses)
	}
	if len(r.Sequence) != 1 || r.Sequence[0].Kind != match.KindDictionary {
		t.Errorf("Sequence = %+v, want single dictionary match", r.Sequence)
	}
}

func TestMinimumGuessDecompositionIgnoresFailedMatch(t *testing.T) {
	matches := []match.Match{
		{Kind: match.KindDictionary, Token: "xqz", I: 0, J: 2, Guesses: nil, Err: errTest{}},
	}
	r := MinimumGuessDecomposition("xqz", matches)
	want := big.NewInt(26 * 26 * 26)
	if r.Guesses.Cmp(want) != 0 {
		t.Errorf("Guesses = %v, want %v (failed match should be ignored)", r.Guesses, want)
	}
}

type errTest struct{}

func (errTest) Error() string { return "test error" }

func TestMinimumGuessDecompositionCoversFullLength(t *testing.T) {
	matches := []match.Match{
		{
			Kind:       match.KindDictionary,
			Token:      "pass",
			I:          0,
			J:          3,
			Guesses:    big.NewInt(5),
			Dictionary: &match.DictionaryDetail{Word: "pass", Rank: 5},
		},
	}
	r := MinimumGuessDecomposition("passXYZ", matches)
	totalLen := 0
	for _, m := range r.Sequence {
		totalLen += len([]rune(m.Token))
	}
	if totalLen != len("passXYZ") {
		t.Errorf("sequence covers %d runes, want %d", totalLen, len("passXYZ"))
	}
}
