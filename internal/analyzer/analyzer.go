// Package analyzer runs the full password pattern-detection pipeline:
// character classification followed by the six pattern detectors
// (dictionary, l33t, keyboard walk, sequence, date, repeat), producing
// the flat, unordered match list the decomposition engine consumes.
//
// Detectors run as a fixed-order slice of checker functions against a
// normalized password, with the null-byte strip and empty-password
// short circuit applied up front.
package analyzer

import (
	"strings"

	"github.com/passlab/crackestimate/internal/charset"
	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// Analysis is the result of running the full detector pipeline on a
// password.
type Analysis struct {
	Password    string
	Length      int
	Charsets    map[charset.Class]bool
	Cardinality int
	Matches     []match.Match
}

// detector is a function that scans password and the shared data store
// for one pattern kind and returns the matches it finds.
type detector func(s *store.Store, password string) ([]match.Match, error)

// detectors is the fixed, explicit detection order: dictionary, l33t,
// keyboard walk, sequence, date, repeat. The order sets the order of
// the match list, which the decomposition engine in internal/decompose
// uses only to break ties between equally cheap candidates (the first
// found is kept). It is kept identical to the original
// implementation's analyzer.go for ease of cross-reference.
var detectors = []detector{
	detectDictionary,
	detectLeet,
	detectKeyboardWalks,
	detectSequences,
	detectDates,
	detectRepeats,
}

// Analyze runs the full pipeline against password using the given data
// store. A data-loading failure (a missing wordlist or keyboard graph)
// is returned as an error; detector panics are not expected here and are
// allowed to propagate since a corrupt data file is a startup-time
// defect, unlike the per-estimator failures internal/estimate isolates.
func Analyze(s *store.Store, password string) (Analysis, error) {
	password = strings.ReplaceAll(password, "\x00", "")

	a := Analysis{
		Password:    password,
		Length:      len([]rune(password)),
		Charsets:    charset.Detect(password),
		Cardinality: charset.Cardinality(password),
	}
	if password == "" {
		return a, nil
	}

	for _, d := range detectors {
		found, err := d(s, password)
		if err != nil {
			return Analysis{}, err
		}
		a.Matches = append(a.Matches, found...)
	}
	return a, nil
}
