// Package config loads game settings.
//
// Precedence, lowest first: built-in defaults, the YAML config file, the
// environment (after loading a local .env), then command-line flags which the
// cli package applies on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Colorblind bool   `mapstructure:"colorblind" env:"TERMORDLE_COLORBLIND"`
	Daily      bool   `mapstructure:"daily" env:"TERMORDLE_DAILY"`
	Hard       bool   `mapstructure:"hard" env:"TERMORDLE_HARD"`
	AllowAll   bool   `mapstructure:"allow_all" env:"TERMORDLE_ALLOW_ALL"`
	NoEmoji    bool   `mapstructure:"no_emoji" env:"TERMORDLE_NO_EMOJI"`
	Tries      int    `mapstructure:"tries" env:"TERMORDLE_TRIES"`
	Word       string `mapstructure:"word" env:"TERMORDLE_WORD"`

	AnswersFile string `mapstructure:"answers_file" env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `mapstructure:"allowed_file" env:"WORDS_ALLOWED_FILE"`
	DailySalt   string `mapstructure:"daily_salt" env:"DAILY_SALT"`

	LogLevel string `mapstructure:"log_level" env:"LOG_LEVEL"`
	LogFile  string `mapstructure:"log_file" env:"LOG_FILE"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Tries:     6,
		DailySalt: "termordle",
		LogLevel:  "warn",
	}
}

// DefaultPath returns the config file looked up when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "termordle", "config.yaml")
}

// Load builds a Config from defaults, the config file and the environment.
// An explicit path must exist; the default path is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := readFile(cfg, path, explicit); err != nil {
		return nil, err
	}

	// .env never overrides variables that are already set.
	_ = godotenv.Load()
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(cfg *Config, path string, required bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// ParseEnv overlays environment variables onto target. Unset variables leave fields alone.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports settings that make the game impossible to start.
func (c *Config) Validate() error {
	if c.Tries < 1 {
		return fmt.Errorf("tries must be at least 1, got %d", c.Tries)
	}
	if c.Word != "" && utf8.RuneCountInString(c.Word) != 5 {
		return errors.New("word must be 5 characters")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}
