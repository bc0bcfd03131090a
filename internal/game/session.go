// internal/game/session.go
//
// Session holds the state of one termordle game.
// Responsibilities:
//   - Validate guesses (length, and dictionary membership unless allow-all).
//   - Score accepted guesses and keep them in order.
//   - Maintain the keyboard hint map.
//   - Track state transitions: awaiting_guess → won/lost/abandoned.
//
// Notes:
//   - Rejected guesses never consume a try.
//   - A Session is owned by a single controller and is not safe for concurrent use.

package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidAnswer is returned at setup when the secret word is not WordLength characters.
	ErrInvalidAnswer = errors.New("word must be 5 characters")
	// ErrInvalidTries is returned at setup when fewer than one try is allowed.
	ErrInvalidTries = errors.New("tries must be at least 1")
	// ErrNoDictionary is returned at setup when dictionary checking is on but no dictionary was given.
	ErrNoDictionary = errors.New("dictionary required unless all guesses are allowed")

	ErrWrongLength   = errors.New("wrong length")
	ErrNotInWordList = errors.New("not in word list")
	ErrGameOver      = errors.New("game finished")
)

// InvalidGuessError reports a guess that was rejected without consuming a try.
type InvalidGuessError struct {
	Guess string
	Err   error // ErrWrongLength or ErrNotInWordList
}

func (e *InvalidGuessError) Error() string {
	return fmt.Sprintf("'%s' is not a valid word", e.Guess)
}

func (e *InvalidGuessError) Unwrap() error { return e.Err }

// Dictionary answers whether a lowercase word may be guessed.
type Dictionary interface {
	IsAllowed(word string) bool
}

// Options configures a Session.
type Options struct {
	MaxTries   int
	AllowAll   bool       // accept any WordLength-character input
	Dictionary Dictionary // required unless AllowAll
}

// Session is a single game in progress or finished.
type Session struct {
	answer   string
	opts     Options
	history  []GuessRecord
	keyboard Keyboard
	state    State
}

// NewSession checks the setup preconditions and returns a session awaiting its first guess.
func NewSession(answer string, opts Options) (*Session, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if utf8.RuneCountInString(answer) != WordLength {
		return nil, ErrInvalidAnswer
	}
	if opts.MaxTries < 1 {
		return nil, ErrInvalidTries
	}
	if !opts.AllowAll && opts.Dictionary == nil {
		return nil, ErrNoDictionary
	}
	return &Session{
		answer:  answer,
		opts:    opts,
		history: make([]GuessRecord, 0, opts.MaxTries),
		state:   StateAwaitingGuess,
	}, nil
}

// Guess validates, scores and records a guess.
//
// Validation rules:
//   - Session must not be finished (ErrGameOver).
//   - Guess must be exactly WordLength characters after trimming.
//   - Unless AllowAll, the lowercased guess must be in the dictionary.
//
// Invalid guesses return an *InvalidGuessError and leave the session untouched.
//
// State transitions:
//   - All marks Correct → StateWon, even if tries remain.
//   - Otherwise, once MaxTries guesses are recorded → StateLost.
func (s *Session) Guess(input string) (GuessRecord, error) {
	if s.state.Finished() {
		return GuessRecord{}, ErrGameOver
	}
	word := strings.ToLower(strings.TrimSpace(input))
	if utf8.RuneCountInString(word) != WordLength {
		return GuessRecord{}, &InvalidGuessError{Guess: input, Err: ErrWrongLength}
	}
	if !s.opts.AllowAll && !s.opts.Dictionary.IsAllowed(word) {
		return GuessRecord{}, &InvalidGuessError{Guess: input, Err: ErrNotInWordList}
	}

	rec := GuessRecord{Word: word, Marks: Evaluate(s.answer, word)}
	s.history = append(s.history, rec)
	s.keyboard.Apply(rec.Word, rec.Marks)

	switch {
	case rec.Solved():
		s.state = StateWon
	case len(s.history) >= s.opts.MaxTries:
		s.state = StateLost
	}
	return rec, nil
}

// Abandon ends an unfinished session. It is a no-op once the session is over.
func (s *Session) Abandon() {
	if !s.state.Finished() {
		s.state = StateAbandoned
	}
}

// State reports the current state.
func (s *Session) State() State { return s.state }

// Answer returns the lowercase secret word.
func (s *Session) Answer() string { return s.answer }

// MaxTries returns the configured try limit.
func (s *Session) MaxTries() int { return s.opts.MaxTries }

// TriesUsed returns the number of accepted guesses.
func (s *Session) TriesUsed() int { return len(s.history) }

// Remaining returns how many guesses may still be made.
func (s *Session) Remaining() int {
	if s.state.Finished() {
		return 0
	}
	return s.opts.MaxTries - len(s.history)
}

// Keyboard returns a copy of the hint map.
func (s *Session) Keyboard() Keyboard { return s.keyboard }

// History returns a copy of the accepted guesses in order.
func (s *Session) History() []GuessRecord {
	out := make([]GuessRecord, len(s.history))
	for i, r := range s.history {
		out[i] = GuessRecord{Word: r.Word, Marks: append([]Mark(nil), r.Marks...)}
	}
	return out
}

// Result snapshots the session for the summary printer.
func (s *Session) Result() Result {
	tries := LossMarker
	if s.state == StateWon {
		tries = strconv.Itoa(len(s.history))
	}
	return Result{
		State:    s.state,
		Answer:   s.answer,
		Tries:    tries,
		MaxTries: s.opts.MaxTries,
		History:  s.History(),
	}
}
