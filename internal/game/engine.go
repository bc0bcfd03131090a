// internal/game/engine.go
//
// Guess evaluation for a single termordle guess.
// Evaluate is pure: same (answer, guess) in, same marks out.

package game

import (
	"strings"
)

// Evaluate scores guess against answer with the two-pass Wordle rules.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count the answer letters that were not matched exactly.
//
// Pass 2:
//   - For each remaining guess letter: if an unclaimed copy is left in the
//     answer, mark Present and claim it; otherwise leave Absent.
//
// Exact matches are always claimed first, so a letter that appears once in the
// answer and twice in the guess is never reported as both Correct and Present.
// Comparison is case-insensitive and works on runes, so allow-all guesses with
// arbitrary characters are scored the same way. Both words must have the same
// rune length; if they don't, every position is Absent.
func Evaluate(answer, guess string) []Mark {
	a := []rune(strings.ToLower(answer))
	g := []rune(strings.ToLower(guess))
	res := make([]Mark, len(g))
	if len(a) != len(g) {
		return res
	}

	// Unclaimed answer letters, keyed by rune.
	remaining := make(map[rune]int, len(a))

	// First pass: exact matches.
	for i := range g {
		if g[i] == a[i] {
			res[i] = MarkCorrect
		} else {
			remaining[a[i]]++
		}
	}

	// Second pass: misplaced letters, bounded by what is left unclaimed.
	for i := range g {
		if res[i] == MarkCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = MarkPresent
			remaining[g[i]]--
		}
	}
	return res
}

// allCorrect returns true if marks is non-empty and every mark is MarkCorrect.
func allCorrect(marks []Mark) bool {
	if len(marks) == 0 {
		return false
	}
	for _, m := range marks {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// isLetter reports whether r is an ASCII letter a–z (either case).
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
