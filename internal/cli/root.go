package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/robalobadob/termordle/internal/config"
	"github.com/robalobadob/termordle/internal/play"
	"github.com/robalobadob/termordle/internal/summary"
	"github.com/robalobadob/termordle/internal/term"
	"github.com/robalobadob/termordle/internal/words"
)

// flags mirrors the command-line options; only flags the user set override config.
type flags struct {
	configPath string
	colorblind bool
	daily      bool
	hard       bool
	allowAll   bool
	noEmoji    bool
	tries      int
	word       string
}

func NewRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "termordle",
		Short:         "A terminal based wordle clone",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, f)
		},
	}

	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.Flags().BoolVarP(&f.colorblind, "colorblind", "c", false, "colorblind mode (green -> orange, yellow -> blue)")
	cmd.Flags().BoolVarP(&f.daily, "daily", "d", false, "try the daily wordle")
	cmd.Flags().BoolVar(&f.hard, "hard", false, "hard mode, selects a word from all valid words instead of just daily words. can be combined with daily")
	cmd.Flags().BoolVarP(&f.allowAll, "allow-all", "a", false, "allow any 5 character string for guesses")
	cmd.Flags().BoolVarP(&f.noEmoji, "no-emoji", "q", false, "don't print emoji summary at the end")
	cmd.Flags().IntVarP(&f.tries, "tries", "t", 6, "number of tries")
	cmd.Flags().StringVarP(&f.word, "word", "w", "", "select the word, must be 5 characters. overrides daily/hard mode")

	cmd.AddCommand(newWordsCmd(f))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads config and environment, applies explicitly set flags and validates.
func loadConfig(fs *pflag.FlagSet, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if fs.Changed("colorblind") {
		cfg.Colorblind = f.colorblind
	}
	if fs.Changed("daily") {
		cfg.Daily = f.daily
	}
	if fs.Changed("hard") {
		cfg.Hard = f.hard
	}
	if fs.Changed("allow-all") {
		cfg.AllowAll = f.allowAll
	}
	if fs.Changed("no-emoji") {
		cfg.NoEmoji = f.noEmoji
	}
	if fs.Changed("tries") {
		cfg.Tries = f.tries
	}
	if fs.Changed("word") {
		cfg.Word = f.word
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGame(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd.Flags(), f)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return fmt.Errorf("failed to load word lists: %w", err)
	}
	answers, allowed := list.Stats()
	log.Debug().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	g, err := play.NewGame(cfg, list, time.Now())
	if err != nil {
		return err
	}

	// Ctrl+C cancels the read instead of killing the process, so the word can be revealed.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := output(cmd)
	display := term.NewRenderer(out, term.PaletteFor(cfg.Colorblind))
	res, err := play.NewController(g.Session, display, cmd.InOrStdin()).Run(ctx)
	if err != nil {
		return err
	}

	if cfg.NoEmoji {
		return nil
	}
	return summary.Write(out, res, summary.Options{
		Daily:      g.Daily,
		Hard:       g.Hard,
		Day:        g.Day,
		Colorblind: cfg.Colorblind,
	})
}

// output is the command's writer, made ANSI-capable when it is the real stdout.
func output(cmd *cobra.Command) io.Writer {
	out := cmd.OutOrStdout()
	if out == io.Writer(os.Stdout) {
		return term.Stdout()
	}
	return out
}
