// apps/wordlebot/internal/game/types.go
//
// Core type definitions for the answer-holder side of a game.
// Defines:
//   - Status: coarse game state as reported to the guesser.
//   - Result: what an oracle answers for one submitted guess.
//   - Game: state for a single in-progress or finished game.

package game

import "sync"

// Status is the state reported alongside each Result.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusWon      Status = "won"
	StatusExceeded Status = "exceeded"
)

// AnswerUnknown is reported while the game is still in progress.
const AnswerUnknown = "unknown"

// Result is the oracle's reply to one guess.
// Feedback is a G/Y/R string, or feedback.WinSentinel / feedback.FailSentinel.
// Answer is revealed only once the game has ended.
type Result struct {
	Status   Status `json:"status"`
	Feedback string `json:"feedback"`
	Answer   string `json:"answer"`
}

// Game holds the state of a single game session.
type Game struct {
	mu sync.Mutex

	ID       string   // Unique game identifier (random hex string).
	Answer   string   // The solution word (always uppercase).
	MaxTries int      // Guesses allowed before the game reports FAIL.
	Tries    int      // Guesses submitted so far, including the failing one.
	Guesses  []string // Guesses made so far (uppercased).
	Finished bool     // True once the game is over (won or exceeded).
	Won      bool     // True if the game was finished with a win.
}
