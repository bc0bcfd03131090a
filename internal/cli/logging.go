package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/termordle/internal/config"
)

// setupLogging points the global zerolog logger at LOG_FILE, or at stderr
// when no file is configured. The returned func closes the file.
func setupLogging(cfg *config.Config) (func(), error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return func() { _ = f.Close() }, nil
	}

	fd := os.Stderr.Fd()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     colorable.NewColorableStderr(),
		NoColor: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd),
	}).With().Timestamp().Logger()
	return func() {}, nil
}
