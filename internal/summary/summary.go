// Package summary prints the shareable emoji grid after a game.
package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/termordle/internal/game"
)

// Link closes the share text.
const Link = "<https://github.com/robalobadob/termordle>"

// Emoji for each mark.
const (
	EmojiCorrect           = "🟩"
	EmojiPresent           = "🟨"
	EmojiCorrectColorblind = "🟧"
	EmojiPresentColorblind = "🟦"
	EmojiAbsent            = "⬜"
)

// Options describe how the game was set up.
type Options struct {
	Daily      bool
	Hard       bool
	Day        int
	Colorblind bool
}

// Header returns e.g. "Daily Termordle Hard mode 1945 3/6".
func Header(res game.Result, opts Options) string {
	var b strings.Builder
	if opts.Daily {
		b.WriteString("Daily ")
	}
	b.WriteString("Termordle ")
	if opts.Hard {
		b.WriteString("Hard mode ")
	}
	if opts.Daily {
		fmt.Fprintf(&b, "%d ", opts.Day)
	}
	fmt.Fprintf(&b, "%s/%d", res.Tries, res.MaxTries)
	return b.String()
}

// Row renders one guess as emoji followed by the word in a spoiler tag.
func Row(rec game.GuessRecord, colorblind bool) string {
	var b strings.Builder
	for _, m := range rec.Marks {
		b.WriteString(emoji(m, colorblind))
	}
	fmt.Fprintf(&b, " ||`%s`||", strings.ToUpper(rec.Word))
	return b.String()
}

func emoji(m game.Mark, colorblind bool) string {
	switch m {
	case game.MarkCorrect:
		if colorblind {
			return EmojiCorrectColorblind
		}
		return EmojiCorrect
	case game.MarkPresent:
		if colorblind {
			return EmojiPresentColorblind
		}
		return EmojiPresent
	default:
		return EmojiAbsent
	}
}

// Write prints a blank line, the header, one row per guess in guess order and the project link.
func Write(w io.Writer, res game.Result, opts Options) error {
	var b strings.Builder
	b.WriteString("\n" + Header(res, opts) + "\n")
	for _, rec := range res.History {
		b.WriteString(Row(rec, opts.Colorblind) + "\n")
	}
	b.WriteString(Link + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}
