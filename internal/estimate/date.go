package estimate

import (
	"math/big"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// dateYearRange is the full span of years the analyzer's validDate accepts
// (1900-2099), dateDaysPerYear approximates a year's worth of calendar
// dates, and dateSeparatorMultiplier accounts for the extra guesses
// needed to also try the separator character.
const (
	dateYearRange           = 200
	dateDaysPerYear         = 365
	dateSeparatorMultiplier = 4
)

// estimateDate scores a date match as year_range * days_per_year,
// multiplied by dateSeparatorMultiplier when the match included a
// separator character.
func estimateDate(_ *store.Store, m *match.Match) error {
	guesses := big.NewInt(dateYearRange * dateDaysPerYear)
	if m.Date.HasSeparator {
		guesses.Mul(guesses, big.NewInt(dateSeparatorMultiplier))
	}
	m.Guesses = guesses
	return nil
}
