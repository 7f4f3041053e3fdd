// Package crackestimate estimates how long a password would take an
// offline attacker to crack: it decomposes the password into the
// cheapest non-overlapping set of known weak patterns (dictionary
// words, l33t substitutions, keyboard walks, sequences, dates, repeats)
// or falls back to brute force/mask attacks, converts the resulting
// guess count into a crack time for a chosen hash algorithm and
// attacker hardware budget, and rates the result on a 0-4 scale.
//
// # Usage
//
//	res, err := crackestimate.Estimate("Tr0ub4dor&3")
//	fmt.Println(res.CrackTimeDisplay) // "6 thousand years"
//	fmt.Println(res.RatingLabel)      // "VERY STRONG"
//	fmt.Println(res.WinningAttack)    // "brute_force"
//
// # Custom configuration
//
//	cfg := crackestimate.DefaultConfig()
//	cfg.Algorithm = "sha256"
//	cfg.HardwareTier = "nation_state"
//	res, err := crackestimate.EstimateWithConfig("Tr0ub4dor&3", cfg)
//
// # Security considerations
//
// crackestimate never logs, prints, or persists the password under
// test. Results do hold it: [Result].Password is the password and each
// [Segment].Token is a piece of it, alongside guess counts, offsets and
// pattern labels. Callers passing passwords from a mutable buffer (e.g.
// an HTTP request body) should zero that buffer themselves after
// calling Estimate — the string Estimate receives is already a
// separate copy of that buffer's bytes.
package crackestimate

import (
	"fmt"
	"math/big"

	"github.com/passlab/crackestimate/internal/analyzer"
	"github.com/passlab/crackestimate/internal/decompose"
	"github.com/passlab/crackestimate/internal/estimate"
	"github.com/passlab/crackestimate/internal/format"
	"github.com/passlab/crackestimate/internal/hardware"
	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/rating"
)

// Strategy names, matching the original per-pattern estimator names
// (distinct from match.Kind's pattern labels — e.g. the "keyboard_walk"
// strategy produces matches of Kind "spatial").
const (
	StrategyDictionary   = "dictionary"
	StrategyLeet         = "l33t"
	StrategyKeyboardWalk = "keyboard_walk"
	StrategySequence     = "sequence"
	StrategyDate         = "date"
	StrategyRepeat       = "repeat"
	StrategyBruteForce   = "brute_force"
	StrategyMask         = "mask"

	winningEmptyPassword = "empty_password"
	winningDPDecompose   = "dp_decomposition"
)

// StrategyResult summarizes one attack strategy's outcome: the fewest
// guesses that strategy would need (nil if the strategy found nothing
// or failed), its display name, and any strategy-specific details
// (match count, mask string, etc).
type StrategyResult struct {
	AttackName  string
	GuessNumber *big.Int
	Details     map[string]any
}

// Segment is one piece of the winning non-overlapping decomposition.
type Segment struct {
	Token   string
	Type    string // a match.Kind value, e.g. "dictionary", "spatial", "brute_force"
	Guesses *big.Int
	I, J    int
}

// Result is the full outcome of estimating a password's crack time.
type Result struct {
	Password          string
	HashAlgorithm     string
	HardwareTier      string
	EffectiveHashRate float64

	GuessNumber      *big.Int
	CrackTimeSeconds float64
	CrackTimeDisplay string

	Rating      int
	RatingLabel string

	// WinningAttack names the cheapest strategy: "empty_password", a
	// single match.Kind pattern name when the decomposition's winning
	// sequence is homogeneous, a "+"-joined list of pattern names for a
	// mixed decomposition, "brute_force", or "mask".
	WinningAttack string

	Strategies    map[string]StrategyResult
	Decomposition []Segment
}

// Estimate runs the full estimation pipeline using [DefaultConfig].
//
// The default configuration is always valid, so an error here comes
// only from loading the data files (for example when
// CRACKESTIMATE_DATA_DIR names a directory missing one of them) — it
// is a convenience wrapper around [EstimateWithConfig].
func Estimate(password string) (Result, error) {
	return EstimateWithConfig(password, DefaultConfig())
}

// EstimateWithConfig runs the full estimation pipeline using a custom
// configuration. It returns an error if the configuration names an
// unsupported algorithm or hardware tier.
//
// Pipeline:
//  1. Short-circuit on an empty (or null-byte-only) password.
//  2. Run the pattern analyzer (dictionary, l33t, keyboard walk,
//     sequence, date, repeat).
//  3. Score every segment-level match, isolating per-match estimator
//     failures.
//  4. Run the DP decomposition over the scored matches.
//  5. Score the whole-password strategies (brute force, mask).
//  6. Take the cheapest of the DP total and the whole-password
//     strategies as the final guess number.
//  7. Convert to crack time and compute the strength rating.
func EstimateWithConfig(password string, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	effRate, err := hardware.EffectiveRate(cfg.Algorithm, cfg.HardwareTier)
	if err != nil {
		return Result{}, err
	}

	if isEffectivelyEmpty(password) {
		return Result{
			Password:          password,
			HashAlgorithm:     cfg.Algorithm,
			HardwareTier:      cfg.HardwareTier,
			EffectiveHashRate: effRate,
			GuessNumber:       big.NewInt(0),
			CrackTimeSeconds:  0,
			CrackTimeDisplay:  "instant",
			Rating:            0,
			RatingLabel:       rating.Label(0),
			WinningAttack:     winningEmptyPassword,
			Strategies:        map[string]StrategyResult{},
			Decomposition:     nil,
		}, nil
	}

	s := cfg.store()
	analysis, err := analyzer.Analyze(s, password)
	if err != nil {
		return Result{}, fmt.Errorf("crackestimate: %w", err)
	}

	scoredMatches := estimate.EstimateMatches(s, analysis.Matches)

	dpResult := decompose.MinimumGuessDecomposition(analysis.Password, scoredMatches)

	bruteForce := estimate.BruteForce(analysis.Password)
	maskResult, err := estimate.Mask(s, analysis.Password)
	if err != nil {
		return Result{}, fmt.Errorf("crackestimate: %w", err)
	}

	finalGuesses := dpResult.Guesses
	winningAttack := winningDPDecompose

	type wholePasswordCandidate struct {
		name    string
		guesses *big.Int
	}
	candidates := []wholePasswordCandidate{
		{StrategyBruteForce, bruteForce.Guesses},
		{StrategyMask, maskResult.Guesses},
	}
	for _, c := range candidates {
		if c.guesses != nil && c.guesses.Cmp(finalGuesses) < 0 {
			finalGuesses = c.guesses
			winningAttack = c.name
		}
	}

	if winningAttack == winningDPDecompose {
		winningAttack = describeDecomposition(dpResult.Sequence)
	}

	ctSeconds, err := hardware.CrackTimeSeconds(finalGuesses, cfg.Algorithm, cfg.HardwareTier)
	if err != nil {
		return Result{}, fmt.Errorf("crackestimate: %w", err)
	}
	r := rating.Compute(ctSeconds)

	strategies := buildStrategyBreakdown(scoredMatches, bruteForce, maskResult)
	segments := buildSegments(dpResult.Sequence)

	return Result{
		Password:          password,
		HashAlgorithm:     cfg.Algorithm,
		HardwareTier:      cfg.HardwareTier,
		EffectiveHashRate: effRate,
		GuessNumber:       finalGuesses,
		CrackTimeSeconds:  ctSeconds,
		CrackTimeDisplay:  format.Time(ctSeconds),
		Rating:            r,
		RatingLabel:       rating.Label(r),
		WinningAttack:     winningAttack,
		Strategies:        strategies,
		Decomposition:     segments,
	}, nil
}

// isEffectivelyEmpty reports whether password contains nothing but
// null bytes once stripped, matching the analyzer's own null-byte
// handling.
func isEffectivelyEmpty(password string) bool {
	for _, r := range password {
		if r != 0 {
			return false
		}
	}
	return true
}

// describeDecomposition names the winning DP strategy from the
// patterns used in its sequence: the pattern itself if homogeneous, a
// "+"-joined list of the non-brute-force patterns for a mixed
// sequence, or "brute_force" if brute-force filler is all there was.
func describeDecomposition(sequence []match.Match) string {
	if len(sequence) == 0 {
		return StrategyBruteForce
	}

	kinds := make(map[match.Kind]bool)
	for _, m := range sequence {
		kinds[m.Kind] = true
	}
	if len(kinds) == 1 {
		return string(sequence[0].Kind)
	}

	var parts []string
	seen := make(map[match.Kind]bool)
	for _, m := range sequence {
		if m.Kind == match.KindBruteForce || seen[m.Kind] {
			continue
		}
		seen[m.Kind] = true
		parts = append(parts, string(m.Kind))
	}
	if len(parts) == 0 {
		return StrategyBruteForce
	}
	joined := parts[0]
	for _, p := range parts[1:] {
		joined += " + " + p
	}
	return joined
}

func buildSegments(sequence []match.Match) []Segment {
	segments := make([]Segment, len(sequence))
	for i, m := range sequence {
		segments[i] = Segment{
			Token:   m.Token,
			Type:    string(m.Kind),
			Guesses: m.Guesses,
			I:       m.I,
			J:       m.J,
		}
	}
	return segments
}

// buildStrategyBreakdown summarizes, per strategy name, the cheapest
// guess number it could offer and how many matches contributed,
// mirroring the original's per-estimator EstimateResult summary.
func buildStrategyBreakdown(scoredMatches []match.Match, bruteForce, maskResult estimate.WholePasswordResult) map[string]StrategyResult {
	kindToStrategy := map[match.Kind]string{
		match.KindDictionary: StrategyDictionary,
		match.KindLeet:       StrategyLeet,
		match.KindKeyboard:   StrategyKeyboardWalk,
		match.KindSequence:   StrategySequence,
		match.KindDate:       StrategyDate,
		match.KindRepeat:     StrategyRepeat,
	}

	best := make(map[string]*big.Int)
	count := make(map[string]int)
	for _, m := range scoredMatches {
		name, ok := kindToStrategy[m.Kind]
		if !ok {
			continue
		}
		count[name]++
		if m.Guesses == nil {
			continue
		}
		if cur, ok := best[name]; !ok || m.Guesses.Cmp(cur) < 0 {
			best[name] = m.Guesses
		}
	}

	strategies := make(map[string]StrategyResult, len(kindToStrategy)+2)
	for _, name := range kindToStrategy {
		strategies[name] = StrategyResult{
			AttackName:  name,
			GuessNumber: best[name],
			Details:     map[string]any{"match_count": count[name]},
		}
	}
	strategies[StrategyBruteForce] = StrategyResult{
		AttackName:  bruteForce.AttackName,
		GuessNumber: bruteForce.Guesses,
		Details:     bruteForce.Details,
	}
	strategies[StrategyMask] = StrategyResult{
		AttackName:  maskResult.AttackName,
		GuessNumber: maskResult.Guesses,
		Details:     maskResult.Details,
	}
	return strategies
}
