// apps/wordlebot/internal/feedback/types.go
//
// Core type definitions for per-letter feedback.
// Defines:
//   - Mark: classification of a single guessed letter (exact/present/absent).
//   - Feedback: one Mark per position, with the G/Y/R wire encoding.
//   - Sentinels used by oracles for outright win / tries exceeded.

package feedback

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the fixed word length the game is played with.
const Length = 5

// Mark represents the evaluation result for a single letter in a guess.
// The underlying byte is the wire symbol:
//   - 'G': letter is correct and in the correct position.
//   - 'Y': letter exists in the answer but in a different position.
//   - 'R': letter is not in the answer (after duplicate accounting).
type Mark byte

const (
	Exact   Mark = 'G'
	Present Mark = 'Y'
	Absent  Mark = 'R'
)

// Wire sentinels returned by oracles in place of a G/Y/R string.
const (
	WinSentinel  = "WIN"
	FailSentinel = "FAIL"
)

var (
	// ErrLengthMismatch is returned when a guess, answer or feedback is not Length long.
	ErrLengthMismatch = errors.New("feedback: length mismatch")
	// ErrInvalidSymbol is returned for a classification character other than G, Y or R.
	ErrInvalidSymbol = errors.New("feedback: invalid symbol")
)

// Valid reports whether m is one of the three known marks.
func (m Mark) Valid() bool {
	return m == Exact || m == Present || m == Absent
}

// Feedback is the ordered per-position result of one guess.
type Feedback []Mark

// String encodes f as a G/Y/R string.
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, m := range f {
		b.WriteByte(byte(m))
	}
	return b.String()
}

// Win reports whether every position is Exact.
func (f Feedback) Win() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != Exact {
			return false
		}
	}
	return true
}

// Equal reports whether f and o carry the same marks.
func (f Feedback) Equal(o Feedback) bool {
	if len(f) != len(o) {
		return false
	}
	for i := range f {
		if f[i] != o[i] {
			return false
		}
	}
	return true
}

// Validate checks length and symbols.
func (f Feedback) Validate() error {
	if len(f) != Length {
		return fmt.Errorf("%w: got %d marks, want %d", ErrLengthMismatch, len(f), Length)
	}
	for i, m := range f {
		if !m.Valid() {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, byte(m), i)
		}
	}
	return nil
}

// Parse decodes a G/Y/R string. Lowercase symbols are accepted.
// Sentinels are not feedback; check IsWinSentinel / IsFailSentinel first.
func Parse(s string) (Feedback, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != Length {
		return nil, fmt.Errorf("%w: %q has %d symbols, want %d", ErrLengthMismatch, s, len(s), Length)
	}
	f := make(Feedback, Length)
	for i := 0; i < len(s); i++ {
		f[i] = Mark(s[i])
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// AllExact returns a winning feedback.
func AllExact() Feedback {
	f := make(Feedback, Length)
	for i := range f {
		f[i] = Exact
	}
	return f
}

// IsWinSentinel reports whether s is the oracle's outright-win marker.
func IsWinSentinel(s string) bool { return strings.EqualFold(strings.TrimSpace(s), WinSentinel) }

// IsFailSentinel reports whether s is the oracle's tries-exceeded marker.
func IsFailSentinel(s string) bool { return strings.EqualFold(strings.TrimSpace(s), FailSentinel) }
