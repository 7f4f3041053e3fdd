// Package store centralizes data loading for the estimation engine:
// wordlists, keyboard adjacency graphs, the l33t substitution table, and
// the mask priority library. Every loader is lazy, memoized for the
// process lifetime, and safe for concurrent callers — a single
// goroutine performs the actual disk/embed read even when many
// estimations start at once, using golang.org/x/sync/singleflight as
// the single-init guard per named table.
package store

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"golang.org/x/sync/singleflight"
)

// init loads a .env file from the working directory into the
// process environment, if one exists, and then builds the default
// Store, so a CRACKESTIMATE_DATA_DIR set in .env is honored. Failures
// are ignored, same as godotenv's own documented idiom — a missing .env
// is the common case outside local development, not an error.
func init() {
	_ = godotenv.Load()
	defaultStore = New()
}

//go:embed assets/wordlists/*.txt assets/keyboards/*.json assets/l33t_table.json assets/masks/*.json assets/hash_rates.json
var embedded embed.FS

// DataDirEnvVar is the environment variable that, when set, overrides
// the embedded data with files read from disk at the named directory.
const DataDirEnvVar = "CRACKESTIMATE_DATA_DIR"

// requiredFiles lists every file the engine refuses to start without.
var requiredFiles = []string{
	"wordlists/common_passwords.txt",
	"wordlists/english_words.txt",
	"wordlists/names.txt",
	"wordlists/surnames.txt",
	"keyboards/qwerty.json",
	"keyboards/dvorak.json",
	"keyboards/keypad.json",
	"l33t_table.json",
	"masks/common_masks.json",
	"hash_rates.json",
}

// Store is a memoized, concurrency-safe handle onto the data files. The
// zero value is not usable; construct with New.
type Store struct {
	dir string // non-empty if overridden from disk, else embedded is used

	group singleflight.Group
	mu    sync.Mutex

	wordlists map[string]*Wordlist
	graphs    map[string]*AdjacencyGraph
	graphStat map[string]GraphStats
	l33t      map[rune][]rune
	masks     []MaskEntry
	hashRates map[string]float64
}

// New resolves the data directory (env override, else the embedded
// default) and returns a ready Store. Loading of individual files is
// deferred until first use.
func New() *Store {
	dir := os.Getenv(DataDirEnvVar)
	return &Store{
		dir:       strings.TrimSpace(dir),
		wordlists: make(map[string]*Wordlist),
		graphs:    make(map[string]*AdjacencyGraph),
		graphStat: make(map[string]GraphStats),
	}
}

// defaultStore is the process-lifetime singleton used by callers that
// don't need a custom data directory (the common case). It is set by
// init, after the .env file has been loaded.
var defaultStore *Store

// Default returns the process-wide Store.
func Default() *Store { return defaultStore }

// Validate returns the list of required data files that are missing,
// relative to the resolved data source. An empty slice means the
// engine can start.
func (s *Store) Validate() []string {
	var missing []string
	for _, rel := range requiredFiles {
		if _, err := s.read(rel); err != nil {
			missing = append(missing, rel)
		}
	}
	return missing
}

func (s *Store) read(rel string) ([]byte, error) {
	if s.dir != "" {
		return os.ReadFile(filepath.Join(s.dir, rel))
	}
	return embedded.ReadFile("assets/" + rel)
}

// once runs fn at most once concurrently for the given key, across all
// callers, and returns its result; callers arriving while fn runs share
// that result. It keeps nothing after fn returns — the loaders cache
// the value in the Store's own maps.
func (s *Store) once(key string, fn func() (any, error)) (any, error) {
	v, err, _ := s.group.Do(key, fn)
	return v, err
}

// Wordlist is a frequency-ranked word list with O(1) rank lookup.
type Wordlist struct {
	Name  string
	words []string
	rank  map[string]int
}

// Rank returns the 1-based rank of the lowercased word, or 0 if absent.
func (w *Wordlist) Rank(word string) int {
	return w.rank[strings.ToLower(word)]
}

// Size returns the number of entries in the word list.
func (w *Wordlist) Size() int { return len(w.words) }

func newWordlist(name string, lines []string) *Wordlist {
	w := &Wordlist{Name: name, words: lines, rank: make(map[string]int, len(lines))}
	for i, line := range lines {
		lw := strings.ToLower(strings.TrimSpace(line))
		if lw == "" {
			continue
		}
		if _, exists := w.rank[lw]; !exists {
			w.rank[lw] = i + 1
		}
	}
	return w
}

// Wordlist loads (once) and returns the named word list: one of
// "common_passwords", "english_words", "names", "surnames".
func (s *Store) Wordlist(name string) (*Wordlist, error) {
	s.mu.Lock()
	if w, ok := s.wordlists[name]; ok {
		s.mu.Unlock()
		return w, nil
	}
	s.mu.Unlock()

	v, err := s.once("wordlist:"+name, func() (any, error) {
		data, err := s.read("wordlists/" + name + ".txt")
		if err != nil {
			return nil, fmt.Errorf("store: missing wordlist %q: %w", name, err)
		}
		lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
		return newWordlist(name, lines), nil
	})
	if err != nil {
		return nil, err
	}
	w := v.(*Wordlist)
	s.mu.Lock()
	s.wordlists[name] = w
	s.mu.Unlock()
	return w, nil
}

// AllWordlists returns every standard wordlist as a name->Wordlist map.
// A map has no order; WordlistNames gives the order the analyzer uses.
func (s *Store) AllWordlists() (map[string]*Wordlist, error) {
	names := []string{"common_passwords", "english_words", "names", "surnames"}
	out := make(map[string]*Wordlist, len(names))
	for _, n := range names {
		w, err := s.Wordlist(n)
		if err != nil {
			return nil, err
		}
		out[n] = w
	}
	return out, nil
}

// WordlistNames is the fixed, deterministic iteration order for
// dictionary/leet detection.
var WordlistNames = []string{"common_passwords", "english_words", "names", "surnames"}

// AdjacencyGraph maps a lowercase key to its ordered neighbor vector.
// A nil entry means "no key in that direction", matching the JSON
// null placeholders in the packaged graph files.
type AdjacencyGraph struct {
	Name      string
	Neighbors map[string][]*string
}

// NeighborsOf returns the neighbor vector for a lowercased single-rune
// key, or nil if the key isn't part of this graph.
func (g *AdjacencyGraph) NeighborsOf(key string) []*string {
	return g.Neighbors[key]
}

// GraphStats caches the per-graph constants the keyboard-walk estimator
// needs: the number of possible walk starting positions and the
// average non-null out-degree.
type GraphStats struct {
	StartingPositions int
	AvgDegree         float64
}

// AdjacencyGraph loads (once) and returns the named keyboard graph: one
// of "qwerty", "dvorak", "keypad".
func (s *Store) AdjacencyGraph(name string) (*AdjacencyGraph, error) {
	s.mu.Lock()
	if g, ok := s.graphs[name]; ok {
		s.mu.Unlock()
		return g, nil
	}
	s.mu.Unlock()

	v, err := s.once("graph:"+name, func() (any, error) {
		data, err := s.read("keyboards/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("store: missing keyboard graph %q: %w", name, err)
		}
		var raw map[string][]*string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("store: malformed keyboard graph %q: %w", name, err)
		}
		return &AdjacencyGraph{Name: name, Neighbors: raw}, nil
	})
	if err != nil {
		return nil, err
	}
	g := v.(*AdjacencyGraph)
	s.mu.Lock()
	s.graphs[name] = g
	s.mu.Unlock()
	return g, nil
}

// GraphStats returns the cached starting-positions/avg-degree pair for
// the named graph, loading and computing it on first use.
func (s *Store) GraphStats(name string) (GraphStats, error) {
	s.mu.Lock()
	if st, ok := s.graphStat[name]; ok {
		s.mu.Unlock()
		return st, nil
	}
	s.mu.Unlock()

	g, err := s.AdjacencyGraph(name)
	if err != nil {
		return GraphStats{}, err
	}

	startingPositions := len(g.Neighbors)
	totalDegree := 0
	for _, neighbors := range g.Neighbors {
		for _, n := range neighbors {
			if n != nil {
				totalDegree++
			}
		}
	}
	avgDegree := 0.0
	if startingPositions > 0 {
		avgDegree = float64(totalDegree) / float64(startingPositions)
	}
	st := GraphStats{StartingPositions: startingPositions, AvgDegree: avgDegree}

	s.mu.Lock()
	s.graphStat[name] = st
	s.mu.Unlock()
	return st, nil
}

// GraphNames is the fixed, deterministic iteration order for keyboard
// walk detection.
var GraphNames = []string{"qwerty", "dvorak", "keypad"}

// L33tTable loads (once) and returns the forward substitution table:
// original character -> the leet characters that can stand in for it.
func (s *Store) L33tTable() (map[rune][]rune, error) {
	s.mu.Lock()
	if s.l33t != nil {
		t := s.l33t
		s.mu.Unlock()
		return t, nil
	}
	s.mu.Unlock()

	v, err := s.once("l33t", func() (any, error) {
		data, err := s.read("l33t_table.json")
		if err != nil {
			return nil, fmt.Errorf("store: missing l33t table: %w", err)
		}
		var raw map[string][]string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("store: malformed l33t table: %w", err)
		}
		table := make(map[rune][]rune, len(raw))
		for orig, subs := range raw {
			r := []rune(orig)[0]
			out := make([]rune, 0, len(subs))
			for _, sub := range subs {
				out = append(out, []rune(sub)[0])
			}
			table[r] = out
		}
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	t := v.(map[rune][]rune)
	s.mu.Lock()
	s.l33t = t
	s.mu.Unlock()
	return t, nil
}

// InverseL33tTable builds leet-char -> possible-original-chars from the
// forward table loaded via L33tTable.
func (s *Store) InverseL33tTable() (map[rune][]rune, error) {
	fwd, err := s.L33tTable()
	if err != nil {
		return nil, err
	}
	inv := make(map[rune][]rune)
	for orig, subs := range fwd {
		for _, sub := range subs {
			inv[sub] = append(inv[sub], orig)
		}
	}
	return inv, nil
}

// MaskEntry is one row of the priority-ordered mask library.
type MaskEntry struct {
	Mask     string `json:"mask"`
	Keyspace int64  `json:"keyspace"`
}

// MaskLibrary loads (once) and returns the priority-ordered mask list.
func (s *Store) MaskLibrary() ([]MaskEntry, error) {
	s.mu.Lock()
	if s.masks != nil {
		m := s.masks
		s.mu.Unlock()
		return m, nil
	}
	s.mu.Unlock()

	v, err := s.once("masks", func() (any, error) {
		data, err := s.read("masks/common_masks.json")
		if err != nil {
			return nil, fmt.Errorf("store: missing mask library: %w", err)
		}
		var entries []MaskEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("store: malformed mask library: %w", err)
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	m := v.([]MaskEntry)
	s.mu.Lock()
	s.masks = m
	s.mu.Unlock()
	return m, nil
}

// HashRates loads (once) the packaged hash-rate table. This duplicates
// the hand-maintained constant table in the hardware package on
// purpose (see internal/hardware) — nothing in the pipeline actually
// reads this copy back; it exists purely so Validate can confirm the
// data file ships correctly.
func (s *Store) HashRates() (map[string]float64, error) {
	s.mu.Lock()
	if s.hashRates != nil {
		m := s.hashRates
		s.mu.Unlock()
		return m, nil
	}
	s.mu.Unlock()

	v, err := s.once("hash_rates", func() (any, error) {
		data, err := s.read("hash_rates.json")
		if err != nil {
			return nil, fmt.Errorf("store: missing hash rate table: %w", err)
		}
		var raw map[string]json.Number
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("store: malformed hash rate table: %w", err)
		}
		out := make(map[string]float64, len(raw))
		for k, n := range raw {
			f, err := strconv.ParseFloat(n.String(), 64)
			if err != nil {
				return nil, fmt.Errorf("store: malformed hash rate for %q: %w", k, err)
			}
			out[k] = f
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	m := v.(map[string]float64)
	s.mu.Lock()
	s.hashRates = m
	s.mu.Unlock()
	return m, nil
}
