// internal/play/controller.go
//
// Controller drives one interactive game.
// Responsibilities:
//   - Read one guess per line and hand it to the session.
//   - Redraw the board after every line (reject message or colored row + keyboard).
//   - Turn an interrupt (context cancellation) or end of input into an abandoned game.
//
// Notes:
//   - Lines are read on a helper goroutine so the blocking read can be raced
//     against ctx. Only the Run goroutine touches the session and the display.

package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/termordle/internal/game"
)

// Display is the rendering surface the controller draws on.
// internal/term provides the ANSI implementation.
type Display interface {
	DrawIntro(kb game.Keyboard) error
	RejectGuess(input string, reason error) error
	DrawGuessRow(rec game.GuessRecord) error
	DrawKeyboard(kb game.Keyboard) error
	DrawOutcome(res game.Result) error
}

// Controller owns a session for the duration of Run.
type Controller struct {
	session *game.Session
	display Display
	in      io.Reader
}

// NewController wires a session to a display and an input stream.
func NewController(s *game.Session, d Display, in io.Reader) *Controller {
	return &Controller{session: s, display: d, in: in}
}

// Run plays until the session is won, lost or abandoned and returns the result.
// Cancelling ctx abandons the game at the next read. An error is returned only
// when the display or the input fails; the session is abandoned in that case.
func (c *Controller) Run(ctx context.Context) (game.Result, error) {
	if err := c.display.DrawIntro(c.session.Keyboard()); err != nil {
		c.session.Abandon()
		return c.session.Result(), fmt.Errorf("draw intro: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(c.in, done)

	var runErr error
	for !c.session.State().Finished() {
		if ctx.Err() != nil {
			c.abandon("interrupted")
			break
		}
		select {
		case <-ctx.Done():
			c.abandon("interrupted")
		case l, ok := <-lines:
			switch {
			case !ok:
				c.abandon("end of input")
			case l.err != nil:
				c.abandon("read failed")
				runErr = fmt.Errorf("read guess: %w", l.err)
			default:
				if err := c.submit(l.text); err != nil {
					c.session.Abandon()
					runErr = err
				}
			}
		}
	}

	res := c.session.Result()
	log.Debug().Stringer("state", res.State).Str("tries", res.Tries).Msg("game over")
	if err := c.display.DrawOutcome(res); err != nil && runErr == nil {
		runErr = fmt.Errorf("draw outcome: %w", err)
	}
	return res, runErr
}

// submit handles one line of input.
func (c *Controller) submit(text string) error {
	rec, err := c.session.Guess(text)
	var invalid *game.InvalidGuessError
	switch {
	case errors.As(err, &invalid):
		log.Debug().Str("input", text).Err(invalid.Err).Msg("guess rejected")
		if err := c.display.RejectGuess(text, invalid); err != nil {
			return fmt.Errorf("draw reject: %w", err)
		}
		return nil
	case err != nil:
		return err
	}

	log.Debug().
		Str("guess", rec.Word).
		Int("remaining", c.session.Remaining()).
		Stringer("state", c.session.State()).
		Msg("guess accepted")

	if err := c.display.DrawGuessRow(rec); err != nil {
		return fmt.Errorf("draw guess: %w", err)
	}
	if err := c.display.DrawKeyboard(c.session.Keyboard()); err != nil {
		return fmt.Errorf("draw keyboard: %w", err)
	}
	return nil
}

func (c *Controller) abandon(reason string) {
	log.Debug().Str("reason", reason).Int("tries", c.session.TriesUsed()).Msg("game abandoned")
	c.session.Abandon()
}

type line struct {
	text string
	err  error
}

// readLines scans r until EOF, an error, or done is closed. The channel is
// closed on EOF; a read error is delivered as a final line.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- line{text: sc.Text()}:
			case <-done:
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-done:
			}
		}
	}()
	return ch
}
