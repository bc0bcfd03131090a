// internal/term/ansi.go
//
// ANSI renderer for the game board.
// Responsibilities:
//   - Color guess rows and keyboard keys by mark.
//   - Redraw in place: the input line is overwritten by the colored guess and
//     the keyboard block above it is redrawn without scrolling.
//
// Screen layout relative to the top keyboard row (kbTop):
//
//	kbTop+0  QWERTYUIOP
//	kbTop+1   ASDFGHJKL
//	kbTop+2    ZXCVBNM
//	kbTop+3  (blank)
//	kbTop+4  first guess row, then one line per accepted guess
//
// After n accepted guesses the cursor sits at the start of line kbTop+4+n,
// where the terminal echoes the next input.

package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/termordle/internal/game"
)

// https://en.wikipedia.org/wiki/ANSI_escape_code#8-bit
const (
	Reset     = "\x1b[0m"
	clearLine = "\x1b[2K"
	lineStart = "\x1b[G"
)

// keyboard rows and their left indent
var keyRows = [...]string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// rows between the keyboard top and the first guess line
const boardOffset = len(keyRows) + 1

// Intro is printed above the keyboard.
const Intro = "type a word, press ctrl+c to give up"

// Palette maps marks to SGR sequences.
type Palette struct {
	Correct string
	Present string
	Absent  string
}

// tile returns bold, dark foreground on the given 256-color background.
func tile(bg int) string {
	return fmt.Sprintf("\x1b[1m\x1b[38;5;232m\x1b[48;5;%dm", bg)
}

var (
	// Standard is green / yellow / gray.
	Standard = Palette{Correct: tile(2), Present: tile(220), Absent: tile(251)}
	// Colorblind swaps to orange / blue so the two hit states never rely on green vs yellow.
	Colorblind = Palette{Correct: tile(208), Present: tile(45), Absent: tile(251)}
)

// PaletteFor picks the palette for the colorblind setting.
func PaletteFor(colorblind bool) Palette {
	if colorblind {
		return Colorblind
	}
	return Standard
}

// Color returns the sequence for m.
func (p Palette) Color(m game.Mark) string {
	switch m {
	case game.MarkCorrect:
		return p.Correct
	case game.MarkPresent:
		return p.Present
	default:
		return p.Absent
	}
}

// Renderer draws the board on an ANSI terminal.
type Renderer struct {
	w       io.Writer
	palette Palette
	rows    int // accepted guess rows drawn under the keyboard
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer, p Palette) *Renderer {
	return &Renderer{w: w, palette: p}
}

// up moves the cursor to the start of the line n rows above.
func up(n int) string { return fmt.Sprintf("\x1b[%dF", n) }

// down moves the cursor to the start of the line n rows below.
func down(n int) string { return fmt.Sprintf("\x1b[%dE", n) }

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

// DrawIntro prints the instructions and the initial keyboard, leaving the
// cursor on the first input line.
func (r *Renderer) DrawIntro(kb game.Keyboard) error {
	var b strings.Builder
	b.WriteString(Intro + "\n\n")
	r.keyboard(&b, kb)
	b.WriteString("\n\n")
	return r.write(b.String())
}

// RejectGuess replaces the line just entered with a message and moves the
// cursor back to its start so the next input overwrites it.
func (r *Renderer) RejectGuess(input string, reason error) error {
	msg := fmt.Sprintf("'%s' is not a valid word", input)
	if reason != nil {
		msg = reason.Error()
	}
	return r.write(up(1) + clearLine + strings.Repeat(" ", game.WordLength+1) + msg + lineStart)
}

// DrawGuessRow overwrites the line just entered with the colored guess.
func (r *Renderer) DrawGuessRow(rec game.GuessRecord) error {
	var b strings.Builder
	b.WriteString(up(1) + clearLine)
	i := 0
	for _, c := range strings.ToUpper(rec.Word) {
		m := game.MarkAbsent
		if i < len(rec.Marks) {
			m = rec.Marks[i]
		}
		b.WriteString(r.palette.Color(m))
		b.WriteRune(c)
		i++
	}
	b.WriteString(Reset + "\n")
	if err := r.write(b.String()); err != nil {
		return err
	}
	r.rows++
	return nil
}

// DrawKeyboard redraws the keyboard block in place and returns the cursor to
// the input line.
func (r *Renderer) DrawKeyboard(kb game.Keyboard) error {
	var b strings.Builder
	b.WriteString(up(boardOffset + r.rows))
	r.keyboard(&b, kb)
	b.WriteString(down(boardOffset - (len(keyRows) - 1) + r.rows))
	return r.write(b.String())
}

// keyboard writes the three key rows, ending on the last row without a newline.
func (r *Renderer) keyboard(b *strings.Builder, kb game.Keyboard) {
	for i, row := range keyRows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(" ", i))
		for _, c := range row {
			if m, ok := kb.Lookup(c); ok {
				b.WriteString(r.palette.Color(m))
			}
			b.WriteString(" " + string(c) + " " + Reset)
		}
	}
}

// DrawOutcome prints the end-of-game line.
func (r *Renderer) DrawOutcome(res game.Result) error {
	switch res.State {
	case game.StateWon:
		n := len(res.History)
		noun := "words"
		if n == 1 {
			noun = "word"
		}
		return r.write(fmt.Sprintf("guessed correctly in %d %s\n", n, noun))
	case game.StateAbandoned:
		// the cursor is still on the interrupted input line
		return r.write(fmt.Sprintf("\nthe word was %s\n", strings.ToUpper(res.Answer)))
	default:
		return r.write(fmt.Sprintf("the word was %s\n", strings.ToUpper(res.Answer)))
	}
}
