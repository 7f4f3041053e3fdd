// Package match defines the password analyzer's data model: the
// polymorphic Match type produced by the six detectors and consumed by
// the estimators and the DP decomposition engine.
//
// Go has no sum types, so a Match is modeled as a single struct carrying
// a Kind tag plus one non-nil detail pointer selected by that tag — the
// idiomatic stand-in for the "one variant per pattern, shared prefix"
// design the pattern analyzer needs. Estimators switch on Kind and read
// the matching detail field; no base-class inheritance is involved.
package match

import "math/big"

// Kind identifies which detector produced a Match.
type Kind string

const (
	KindDictionary Kind = "dictionary"
	KindLeet       Kind = "l33t"
	KindKeyboard   Kind = "spatial"
	KindSequence   Kind = "sequence"
	KindDate       Kind = "date"
	KindRepeat     Kind = "repeat"
	KindBruteForce Kind = "brute_force"
)

// Match covers the inclusive substring password[I..J] and carries the
// pattern-specific detail for Kind. Guesses is nil until the matching
// estimator scores it; once set, a Match is never mutated again.
type Match struct {
	Kind    Kind
	Token   string
	I, J    int
	Guesses *big.Int

	// Err records an estimator failure for this match (a panic or
	// error recovered during scoring). A non-nil Err means Guesses is
	// nil and the match must be treated as infinitely costly — excluded
	// from the DP decomposition as if it didn't exist.
	Err error

	Dictionary *DictionaryDetail
	Leet       *LeetDetail
	Keyboard   *KeyboardDetail
	Sequence   *SequenceDetail
	Date       *DateDetail
	Repeat     *RepeatDetail
	BruteForce *BruteForceDetail
}

// DictionaryDetail is carried by a KindDictionary match.
type DictionaryDetail struct {
	Word           string // lowercased dictionary word (or its reversal)
	Rank           int    // 1-based rank in Dictionary, 0 if absent
	Dictionary     string // wordlist name
	Reversed       bool
}

// LeetDetail is carried by a KindLeet match.
type LeetDetail struct {
	Word       string // de-substituted word
	Rank       int
	Dictionary string
	SubTable   map[rune]rune // leet-char -> original char, for this match only
}

// KeyboardDetail is carried by a KindKeyboard match.
type KeyboardDetail struct {
	Graph        string // adjacency graph name (qwerty, dvorak, keypad)
	Turns        int    // direction changes (first step counts as turn 1)
	ShiftedCount int    // characters requiring shift
}

// SequenceDetail is carried by a KindSequence match.
type SequenceDetail struct {
	Name      string // "digit", "lower", "upper", "other"
	Ascending bool
	Delta     int // +-1 or +-2
}

// DateDetail is carried by a KindDate match.
type DateDetail struct {
	Year         int // 0 if unknown
	Month        int
	Day          int
	Separator    string
	HasSeparator bool
}

// RepeatDetail is carried by a KindRepeat match.
type RepeatDetail struct {
	BaseToken    string
	BaseGuesses  *big.Int
	RepeatCount  int
}

// BruteForceDetail is carried by a KindBruteForce match; such matches
// are created only by the DP engine, never by a detector.
type BruteForceDetail struct {
	Cardinality int
}

// EstimatorType distinguishes segment-level matches (pooled into the DP
// engine) from whole-password estimators (compared directly against the
// DP result).
type EstimatorType string

const (
	TypeSegmentLevel EstimatorType = "segment_level"
	TypeWholePassword EstimatorType = "whole_password"
)
