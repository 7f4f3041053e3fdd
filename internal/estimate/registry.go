package estimate

import (
	"fmt"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// segmentEstimator scores one match in place, setting m.Guesses (and
// any per-detail fields, e.g. RepeatDetail.BaseGuesses). It may use s to
// load supporting data (the l33t table, keyboard graph stats).
type segmentEstimator func(s *store.Store, m *match.Match) error

// segmentEstimators is the explicit, compile-time registry of
// segment-level scorers, keyed by the Kind they apply to. Go has no
// package-introspection mechanism for auto-discovering scorers by
// type, so this stays a static map, looked up by Kind (never iterated).
var segmentEstimators = map[match.Kind]segmentEstimator{
	match.KindDictionary: estimateDictionary,
	match.KindLeet:       estimateLeet,
	match.KindKeyboard:   estimateKeyboardWalk,
	match.KindSequence:   estimateSequence,
	match.KindDate:       estimateDate,
	match.KindRepeat:     estimateRepeat,
}

// EstimateMatches scores every segment-level match, returning a new
// slice with Guesses (and detail fields) populated. A match whose Kind
// has no registered estimator, or whose estimator panics or errors, is
// left with Guesses == nil and Err set — the decomposition engine must
// treat such a match as unusable rather than free.
func EstimateMatches(s *store.Store, matches []match.Match) []match.Match {
	out := make([]match.Match, len(matches))
	copy(out, matches)
	for i := range out {
		scoreOne(s, &out[i])
	}
	return out
}

func scoreOne(s *store.Store, m *match.Match) {
	fn, ok := segmentEstimators[m.Kind]
	if !ok {
		m.Err = fmt.Errorf("estimate: no estimator registered for kind %q", m.Kind)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			m.Guesses = nil
			m.Err = fmt.Errorf("estimate: %s estimator panicked: %v", m.Kind, r)
		}
	}()
	if err := fn(s, m); err != nil {
		m.Guesses = nil
		m.Err = err
	}
}
