package estimate

import (
	"math/big"
	"testing"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

func TestUppercaseVariationsAllLower(t *testing.T) {
	if got := uppercaseVariations("password"); got.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("uppercaseVariations(\"password\") = %v, want 1", got)
	}
}

func TestUppercaseVariationsAllUpper(t *testing.T) {
	if got := uppercaseVariations("PASSWORD"); got.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("uppercaseVariations(\"PASSWORD\") = %v, want 2", got)
	}
}

func TestUppercaseVariationsFirstCap(t *testing.T) {
	if got := uppercaseVariations("Password"); got.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("uppercaseVariations(\"Password\") = %v, want 2", got)
	}
}

func TestEstimateDictionary(t *testing.T) {
	m := match.Match{
		Kind:       match.KindDictionary,
		Token:      "password",
		Dictionary: &match.DictionaryDetail{Word: "password", Rank: 1, Dictionary: "common_passwords"},
	}
	if err := estimateDictionary(nil, &m); err != nil {
		t.Fatalf("estimateDictionary() error = %v", err)
	}
	if m.Guesses.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("Guesses = %v, want 1", m.Guesses)
	}
}

func TestEstimateRepeat(t *testing.T) {
	m := match.Match{
		Kind:   match.KindRepeat,
		Token:  "aaaaaa",
		Repeat: &match.RepeatDetail{BaseToken: "a", RepeatCount: 6},
	}
	if err := estimateRepeat(nil, &m); err != nil {
		t.Fatalf("estimateRepeat() error = %v", err)
	}
	// base brute force of "a" = 26, * 6 repeats = 156
	if m.Guesses.Cmp(big.NewInt(156)) != 0 {
		t.Errorf("Guesses = %v, want 156", m.Guesses)
	}
}

func TestEstimateDateNoSeparator(t *testing.T) {
	m := match.Match{
		Kind: match.KindDate,
		Date: &match.DateDetail{Year: 1990, Month: 1, Day: 15, HasSeparator: false},
	}
	if err := estimateDate(nil, &m); err != nil {
		t.Fatalf("estimateDate() error = %v", err)
	}
	want := big.NewInt(200 * 365)
	if m.Guesses.Cmp(want) != 0 {
		t.Errorf("Guesses = %v, want %v", m.Guesses, want)
	}
}

func TestEstimateMatchesIsolatesUnknownKind(t *testing.T) {
	s := store.Default()
	matches := []match.Match{{Kind: "unknown"}}
	out := EstimateMatches(s, matches)
	if out[0].Guesses != nil {
		t.Errorf("unknown-kind match should be left unscored")
	}
}

func TestBruteForceEmpty(t *testing.T) {
	r := BruteForce("")
	if r.Guesses.Cmp(big.NewInt(0)) != 0 {
		t.Errorf("BruteForce(\"\").Guesses = %v, want 0", r.Guesses)
	}
}

func TestBruteForce(t *testing.T) {
	r := BruteForce("aa")
	if r.Guesses.Cmp(big.NewInt(676)) != 0 {
		t.Errorf("BruteForce(\"aa\").Guesses = %v, want 676", r.Guesses)
	}
}
