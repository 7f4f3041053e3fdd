package analyzer

import (
	"strings"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// minDictionaryTokenLen is the shortest substring checked against the
// wordlists; single characters match far too often to be meaningful.
const minDictionaryTokenLen = 2

// detectDictionary checks every substring of password — forward and
// reversed — against every wordlist, in O(n^2 * wordlists) time.
func detectDictionary(s *store.Store, password string) ([]match.Match, error) {
	wordlists, err := s.AllWordlists()
	if err != nil {
		return nil, err
	}

	runes := []rune(password)
	n := len(runes)
	var matches []match.Match

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			token := string(runes[i : j+1])
			if len([]rune(token)) < minDictionaryTokenLen {
				continue
			}
			lower := strings.ToLower(token)
			reversed := reverseString(lower)

			for _, name := range store.WordlistNames {
				wl := wordlists[name]

				if rank := wl.Rank(lower); rank > 0 {
					matches = append(matches, match.Match{
						Kind:  match.KindDictionary,
						Token: token,
						I:     i,
						J:     j,
						Dictionary: &match.DictionaryDetail{
							Word:       lower,
							Rank:       rank,
							Dictionary: name,
							Reversed:   false,
						},
					})
				}
				if reversed != lower {
					if rank := wl.Rank(reversed); rank > 0 {
						matches = append(matches, match.Match{
							Kind:  match.KindDictionary,
							Token: token,
							I:     i,
							J:     j,
							Dictionary: &match.DictionaryDetail{
								Word:       reversed,
								Rank:       rank,
								Dictionary: name,
								Reversed:   true,
							},
						})
					}
				}
			}
		}
	}
	return matches, nil
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
