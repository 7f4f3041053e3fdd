// Package targeted implements the personal-context matching used by
// the "targeted" HTTP operation: given a password and a list of
// personal context strings (names, dates, usernames, ...), it reports
// which of those strings occur in the password.
//
// Word extraction handles multi-part context like email addresses and
// hyphenated names by splitting on common separators, since a targeted
// attacker trying a context word embedded in a larger token ("j.smith")
// is exactly the scenario this operation exists to flag.
package targeted

import (
	"strings"

	"github.com/passlab/crackestimate/internal/safemem"
)

// Match records one personal context string found in a password.
type Match struct {
	Context string // the context string as supplied by the caller
	Word    string // the specific token within it that matched
}

// minContextWordLen: words shorter than this are skipped to avoid
// false positives ("a", "id").
const minContextWordLen = 3

// Find returns every context string that occurs, case-insensitively,
// as a substring of password (directly, or via one of its extracted
// sub-words for multi-part context like "john.doe@acme.com").
// Order follows the input context slice; each context string appears
// at most once.
func Find(password string, context []string) []Match {
	if len(context) == 0 || password == "" {
		return nil
	}
	pwLower := strings.ToLower(password)

	var matches []Match
	for _, c := range context {
		normalized := strings.TrimSpace(strings.ToLower(c))
		if normalized == "" {
			continue
		}
		for _, w := range extractWords(normalized) {
			if len(w) < minContextWordLen {
				continue
			}
			// Constant-time containment avoids leaking, via response
			// timing, where in the password a guessed context word
			// would have matched.
			if safemem.ConstantTimeContains(pwLower, w) {
				matches = append(matches, Match{Context: c, Word: w})
				break
			}
		}
	}
	return matches
}

// extractWords splits a context term into sub-tokens worth checking
// individually: the term itself, plus, for email-shaped terms, its
// local part and domain labels, plus separator-split fragments for
// everything else (e.g. "new-york" -> "new", "york").
func extractWords(word string) []string {
	if strings.Contains(word, "@") {
		return extractEmailParts(word)
	}

	result := []string{word}
	for _, part := range strings.FieldsFunc(word, func(r rune) bool {
		return r == '.' || r == '-' || r == '_' || r == ' '
	}) {
		if part != "" && part != word {
			result = append(result, part)
		}
	}
	return dedupe(result)
}

func extractEmailParts(email string) []string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return []string{email}
	}
	local, domain := parts[0], parts[1]

	result := []string{local}
	result = append(result, strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	})...)
	for _, part := range strings.Split(domain, ".") {
		result = append(result, part)
		result = append(result, strings.FieldsFunc(part, func(r rune) bool {
			return r == '-' || r == '_'
		})...)
	}
	return dedupe(result)
}

func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := words[:0]
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
