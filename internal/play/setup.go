package play

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/termordle/internal/config"
	"github.com/robalobadob/termordle/internal/daily"
	"github.com/robalobadob/termordle/internal/game"
	"github.com/robalobadob/termordle/internal/words"
)

// Game is a session ready to play plus how its word was picked.
type Game struct {
	Session *game.Session
	Daily   bool // word came from the daily index
	Hard    bool // word was drawn from every guessable word
	Day     int  // daily puzzle number for the date the game started
}

// NewGame picks the secret word and builds the session.
//
// Selection order:
//   - cfg.Word, when set, wins and is made guessable.
//   - cfg.Daily indexes the pool by date.
//   - Otherwise a random word from the pool.
//
// The pool is the answer list, or every allowed word in hard mode.
func NewGame(cfg *config.Config, list *words.List, now time.Time) (*Game, error) {
	pool := list.Answers()
	if cfg.Hard {
		pool = list.All()
	}

	g := &Game{Hard: cfg.Hard, Day: daily.DayNumber(now)}
	var answer string
	switch {
	case cfg.Word != "":
		answer = cfg.Word
		list.Add(answer)
	case cfg.Daily:
		answer = pool[daily.WordIndex(now, cfg.DailySalt, len(pool))]
		g.Daily = true
	default:
		answer = words.Random(pool)
	}

	s, err := game.NewSession(answer, game.Options{
		MaxTries:   cfg.Tries,
		AllowAll:   cfg.AllowAll,
		Dictionary: list,
	})
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.Session = s

	log.Debug().
		Bool("daily", g.Daily).
		Bool("hard", g.Hard).
		Bool("preset", cfg.Word != "").
		Int("pool", len(pool)).
		Int("tries", cfg.Tries).
		Msg("game ready")
	return g, nil
}
