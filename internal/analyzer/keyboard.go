package analyzer

import (
	"strings"

	"github.com/passlab/crackestimate/internal/match"
	"github.com/passlab/crackestimate/internal/store"
)

// minKeyboardWalkLength is the shortest walk reported as a match.
const minKeyboardWalkLength = 3

// shiftedSymbols is the set of non-letter characters that require the
// shift key on a standard US keyboard layout.
const shiftedSymbols = `~!@#$%^&*()_+{}|:"<>?`

// detectKeyboardWalks finds spatial walks across every known keyboard
// graph (qwerty, dvorak, keypad), including the "first step counts as
// turn 1" convention inherited from zxcvbn.
func detectKeyboardWalks(s *store.Store, password string) ([]match.Match, error) {
	var matches []match.Match
	for _, name := range store.GraphNames {
		graph, err := s.AdjacencyGraph(name)
		if err != nil {
			return nil, err
		}
		matches = append(matches, detectWalksForGraph(password, name, graph)...)
	}
	return matches, nil
}

func detectWalksForGraph(password string, graphName string, graph *store.AdjacencyGraph) []match.Match {
	runes := []rune(password)
	n := len(runes)
	if n < minKeyboardWalkLength {
		return nil
	}

	var matches []match.Match
	i := 0
	for i < n-1 {
		if graph.NeighborsOf(strings.ToLower(string(runes[i]))) == nil {
			i++
			continue
		}

		j := i + 1
		lastDirection := -1
		turns := 0
		shiftedCount := 0
		if isShifted(runes[i]) {
			shiftedCount = 1
		}

		for j < n {
			prevChar := strings.ToLower(string(runes[j-1]))
			curChar := strings.ToLower(string(runes[j]))

			neighbors := graph.NeighborsOf(prevChar)
			if neighbors == nil {
				break
			}

			direction := findDirection(neighbors, curChar)
			if direction == -1 {
				break
			}

			if lastDirection == -1 {
				turns = 1
			} else if direction != lastDirection {
				turns++
			}
			lastDirection = direction

			if isShifted(runes[j]) {
				shiftedCount++
			}
			j++
		}

		walkLength := j - i
		if walkLength >= minKeyboardWalkLength {
			matches = append(matches, match.Match{
				Kind:  match.KindKeyboard,
				Token: string(runes[i:j]),
				I:     i,
				J:     j - 1,
				Keyboard: &match.KeyboardDetail{
					Graph:        graphName,
					Turns:        turns,
					ShiftedCount: shiftedCount,
				},
			})
			i = j
		} else {
			i++
		}
	}
	return matches
}

// findDirection returns the index of the neighbor slot matching
// targetChar, or -1 if no direction leads there.
func findDirection(neighbors []*string, targetChar string) int {
	for direction, neighbor := range neighbors {
		if neighbor != nil && strings.ToLower(*neighbor) == targetChar {
			return direction
		}
	}
	return -1
}

func isShifted(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	return strings.ContainsRune(shiftedSymbols, r)
}
