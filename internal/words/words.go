// apps/wordlebot/internal/words/words.go
//
// Provides the dictionary the solver starts from.
//
// Responsibilities:
//   - Load a word list from a file, or fall back to the embedded default list.
//   - Normalize: trim, uppercase, keep only 5-letter A–Z words, drop duplicates.
//   - Hand out per-game candidate orderings (source, alphabetical, seeded shuffle).
//
// A Dictionary is immutable after construction and may be shared read-only by
// any number of concurrent solvers; every accessor returns a fresh slice.
//
// Input format:
//   - One word per line. Blank lines and lines starting with '#' are skipped.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/big"
	mrand "math/rand"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordlebot/internal/feedback"
)

//go:embed default_words.txt
var embeddedWords string

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: no usable words")

// Order selects how a solver's initial candidate list is arranged.
type Order string

const (
	OrderSource  Order = "source"  // as loaded
	OrderAlpha   Order = "alpha"   // lexical
	OrderShuffle Order = "shuffle" // seeded Fisher–Yates
)

// ParseOrder maps a config/flag value to an Order.
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case OrderSource, OrderAlpha, OrderShuffle:
		return o, nil
	case "":
		return OrderShuffle, nil
	}
	return "", fmt.Errorf("words: unknown order %q", s)
}

// Dictionary is an immutable, deduplicated list of uppercase words.
type Dictionary struct {
	list []string
	set  map[string]struct{}
}

// New builds a Dictionary from raw words, normalizing and deduplicating them.
// First occurrence wins the position.
func New(raw []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(raw))}
	for _, w := range raw {
		w, ok := Normalize(w)
		if !ok {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	return d
}

// Default returns the embedded fallback dictionary.
func Default() *Dictionary {
	return New(normalizeLines(embeddedWords))
}

// Load reads the word file at path. If path is empty, unreadable, or contains
// no usable words, the embedded default list is used instead and the reason is
// logged; a run never fails for lack of a word file.
func Load(path string) *Dictionary {
	if path == "" {
		return Default()
	}
	d, err := LoadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("word list unavailable, using built-in default")
		return Default()
	}
	return d
}

// LoadFile reads and normalizes the word file at path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read normalizes words from r, one per line.
func Read(r io.Reader) (*Dictionary, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	d := New(raw)
	if d.Len() == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Normalize trims and uppercases w and reports whether it is a playable word.
func Normalize(w string) (string, bool) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if len(w) != feedback.Length || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// normalizeLines splits an embedded multiline string, skipping comments.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.list) }

// Contains reports whether w (any case) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToUpper(strings.TrimSpace(w))]
	return ok
}

// At returns the i-th word in source order.
func (d *Dictionary) At(i int) string { return d.list[i] }

// Words returns a copy of the words in source order.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.list...)
}

// Ordered returns a fresh copy of the words arranged by o.
// OrderShuffle is deterministic for a given seed.
func (d *Dictionary) Ordered(o Order, seed int64) []string {
	out := d.Words()
	switch o {
	case OrderAlpha:
		sort.Strings(out)
	case OrderShuffle:
		rng := mrand.New(mrand.NewSource(seed))
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}

// Random returns a cryptographically random word.
// An empty dictionary yields "CRANE".
func (d *Dictionary) Random() string {
	if len(d.list) == 0 {
		return "CRANE"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(d.list))))
	return d.list[nBig.Int64()]
}
