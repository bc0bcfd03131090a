package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/termordle/internal/config"
	"github.com/robalobadob/termordle/internal/words"
)

// newWordsCmd reports which word lists would be used and how big they are.
func newWordsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Show word list counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			list, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
			if err != nil {
				return fmt.Errorf("failed to load word lists: %w", err)
			}
			answers, allowed := list.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "answers: %d (%s)\nallowed: %d (%s)\n",
				answers, source(cfg.AnswersFile, cfg.AllowedFile),
				allowed, source(cfg.AllowedFile, ""))
			return nil
		},
	}
}

func source(path, fallback string) string {
	switch {
	case path != "":
		return path
	case fallback != "":
		return fallback
	}
	return "embedded"
}
