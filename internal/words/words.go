// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to embedded defaults.
//   - Maintain a set for quick guess lookups (answers ∪ allowed).
//   - Supply helpers like Random, IsAllowed and Stats.
//
// Word Lists:
//   - "answers": words the secret is drawn from (exactly 5 lowercase letters).
//   - "allowed": extra valid guesses (answers are always allowed too).
//
// Load behavior:
//   1. If both paths are set, load answers from the first and allowed guesses from the second.
//   2. If only the allowed path is set, use that file for both answers and allowed guesses.
//   3. If only the answers path is set, use it for answers and the embedded allowed list.
//   4. If neither is set, use the embedded defaults in assets/.
//
// File format:
//   • Any whitespace separates words, so one-per-line and space-separated lists both work.
//   • "#" starts a comment that runs to the end of the line.
//   • Entries that are not 5 letters a–z are skipped; everything is lowercased.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/termordle/assets"
)

// ErrEmpty is returned when no usable answer survives loading.
var ErrEmpty = errors.New("words: answers list is empty")

// List holds the answer pool and the set of guessable words.
type List struct {
	answers []string
	extra   []string            // allowed words that are not answers, in load order
	allowed map[string]struct{} // answers ∪ extra
}

// Load reads the word lists described in the package comment.
func Load(answersPath, allowedPath string) (*List, error) {
	switch {
	case answersPath != "" && allowedPath != "":
		ans, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(ans, all)

	case answersPath == "" && allowedPath != "":
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(all, nil)

	case answersPath != "":
		ans, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		all, err := readEmbedded(assets.Allowed)
		if err != nil {
			return nil, err
		}
		return New(ans, all)

	default:
		ans, err := readEmbedded(assets.Answers)
		if err != nil {
			return nil, err
		}
		all, err := readEmbedded(assets.Allowed)
		if err != nil {
			return nil, err
		}
		return New(ans, all)
	}
}

// New builds a List from already-read words. Invalid and duplicate entries are dropped.
func New(answers, allowed []string) (*List, error) {
	l := &List{allowed: make(map[string]struct{}, len(answers)+len(allowed))}
	for _, w := range answers {
		w = normalize(w)
		if !valid(w) {
			continue
		}
		if _, dup := l.allowed[w]; dup {
			continue
		}
		l.allowed[w] = struct{}{}
		l.answers = append(l.answers, w)
	}
	if len(l.answers) == 0 {
		return nil, ErrEmpty
	}
	for _, w := range allowed {
		if w = normalize(w); valid(w) {
			l.Add(w)
		}
	}
	return l, nil
}

// readWordFile loads words from a file on disk.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	out, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

func readEmbedded(open func() (io.ReadCloser, error)) ([]string, error) {
	rc, err := open()
	if err != nil {
		return nil, fmt.Errorf("open embedded word list: %w", err)
	}
	defer rc.Close()
	return readWords(rc)
}

// readWords splits r into normalized candidate words, dropping comments.
func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, w := range strings.Fields(line) {
			out = append(out, normalize(w))
		}
	}
	return out, sc.Err()
}

func normalize(w string) string { return strings.ToLower(strings.TrimSpace(w)) }

// valid reports whether w is exactly 5 lowercase ASCII letters.
func valid(w string) bool {
	if len(w) != 5 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// Add makes w guessable. Unlike list entries it only needs to be 5 characters
// long, so a preset secret word can always be entered. Words already known are ignored.
func (l *List) Add(w string) {
	w = normalize(w)
	if utf8.RuneCountInString(w) != 5 {
		return
	}
	if _, ok := l.allowed[w]; ok {
		return
	}
	l.allowed[w] = struct{}{}
	l.extra = append(l.extra, w)
}

// Answers returns the answer pool. Callers must not modify it.
func (l *List) Answers() []string { return l.answers }

// All returns answers followed by the extra allowed words, a stable order
// suitable for deterministic indexing.
func (l *List) All() []string {
	out := make([]string, 0, len(l.answers)+len(l.extra))
	out = append(out, l.answers...)
	return append(out, l.extra...)
}

// IsAllowed reports whether w is a valid guess (answers ∪ allowed).
func (l *List) IsAllowed(w string) bool {
	_, ok := l.allowed[normalize(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}

// Random returns a cryptographically random word from pool.
// An empty pool falls back to "crane".
func Random(pool []string) string {
	if len(pool) == 0 {
		return "crane"
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return pool[0]
	}
	return pool[nBig.Int64()]
}
