// apps/wordlebot/internal/feedback/evaluate.go
//
// Scores a guess against an answer using the classic two-pass Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches as Exact; those answer letters are consumed.
//   - Count the remaining (unconsumed) answer letters.
//
// Pass 2 (left to right):
//   - For each non-exact guess letter: if an unconsumed copy remains,
//     mark Present and consume it; otherwise mark Absent.
//
// Each answer letter is consumed by at most one guess position, which is
// what keeps repeated letters honest (ERROR vs ROBOT marks a single R).

package feedback

import (
	"fmt"
	"strings"
)

// Evaluate compares guess with answer. Both are case-normalized to upper case
// and must be exactly Length letters long.
func Evaluate(guess, answer string) (Feedback, error) {
	guess = strings.ToUpper(guess)
	answer = strings.ToUpper(answer)
	if len(guess) != Length || len(answer) != Length {
		return nil, fmt.Errorf("%w: guess %q, answer %q", ErrLengthMismatch, guess, answer)
	}
	if guess == answer {
		return AllExact(), nil
	}
	return score(guess, answer), nil
}

// score assumes equal-length, case-normalized inputs.
func score(guess, answer string) Feedback {
	n := len(guess)
	res := make(Feedback, n)

	// Unconsumed answer letters after the exact pass.
	var counts [256]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = Exact
		} else {
			counts[answer[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Exact {
			continue
		}
		c := guess[i]
		if counts[c] > 0 {
			res[i] = Present
			counts[c]--
		} else {
			res[i] = Absent
		}
	}
	return res
}
