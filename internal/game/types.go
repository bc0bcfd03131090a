// internal/game/types.go
//
// Core type definitions for the termordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent).
//   - GuessRecord: one accepted guess paired with its marks.
//   - State/Outcome: where a Session is in its lifecycle.
//   - Result: what a finished session hands to the summary printer.

package game

// WordLength is the number of characters in every answer and guess.
const WordLength = 5

// Mark represents the evaluation result for a single letter in a guess.
// Marks are ordered by display priority: MarkCorrect > MarkPresent > MarkAbsent.
//   - MarkCorrect: letter is in the answer at this position.
//   - MarkPresent: letter is in the answer at a different position.
//   - MarkAbsent:  letter is not in the answer (or all copies are already claimed).
type Mark int

const (
	MarkAbsent Mark = iota
	MarkPresent
	MarkCorrect
)

func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkPresent:
		return "present"
	case MarkAbsent:
		return "absent"
	}
	return "unknown"
}

// Outranks reports whether m has a higher display priority than o.
func (m Mark) Outranks(o Mark) bool { return m > o }

// GuessRecord is an accepted guess and its marks. Word is stored lowercase.
type GuessRecord struct {
	Word  string
	Marks []Mark
}

// Solved reports whether every mark is MarkCorrect.
func (r GuessRecord) Solved() bool { return allCorrect(r.Marks) }

// State is the session state machine. Evaluation happens synchronously inside
// Session.Guess, so it never shows up as an observable state.
type State int

const (
	StateAwaitingGuess State = iota
	StateWon
	StateLost
	StateAbandoned
)

func (s State) String() string {
	switch s {
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Finished reports whether s is terminal.
func (s State) Finished() bool { return s != StateAwaitingGuess }

// LossMarker replaces the try count in the summary when the word was not found.
const LossMarker = "X"

// Result is the final, read-only view of a finished session.
type Result struct {
	State    State
	Answer   string // lowercase secret word
	Tries    string // "1".."N" on a win, LossMarker otherwise
	MaxTries int
	History  []GuessRecord // in guess order
}

// Won reports whether the session ended with the word guessed.
func (r Result) Won() bool { return r.State == StateWon }
