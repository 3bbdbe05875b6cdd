// Package config provides configuration for the chessington command.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessington-go/internal/board"
	"github.com/lgbarn/chessington-go/internal/chess"
	"github.com/lgbarn/chessington-go/internal/errors"
)

// Log formats understood by the logging package.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // console or json
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: FormatConsole,
	}
}

// Config holds all program configuration.
type Config struct {
	Log LogConfig `yaml:"log"`

	// Position is the FEN placement to load.
	Position string `yaml:"position"`

	// Moves are relocations applied before listing, e.g. "e2e4".
	Moves []string `yaml:"moves"`

	// Show lists the squares whose pieces get their moves printed.
	Show []string `yaml:"show"`

	// Player, when set, prints moves for every piece of that side.
	Player string `yaml:"player"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Log:      NewLogConfig(),
		Position: board.StartingFEN,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults and validates the result.
func Decode(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := NewConfig()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: %w", c.Log.Level, errors.ErrInvalidConfig)
	}

	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("log format %q: %w", c.Log.Format, errors.ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Position) == "" {
		return fmt.Errorf("empty position: %w", errors.ErrInvalidConfig)
	}

	if c.Player != "" {
		if _, ok := chess.ParsePlayer(c.Player); !ok {
			return fmt.Errorf("player %q: %w", c.Player, errors.ErrInvalidConfig)
		}
	}

	for _, mv := range c.Moves {
		if _, _, err := chess.ParseMove(mv); err != nil {
			return fmt.Errorf("move %q: %w: %v", mv, errors.ErrInvalidConfig, err)
		}
	}

	for _, name := range c.Show {
		if _, err := chess.ParseSquare(name); err != nil {
			return fmt.Errorf("show %q: %w: %v", name, errors.ErrInvalidConfig, err)
		}
	}
	return nil
}
