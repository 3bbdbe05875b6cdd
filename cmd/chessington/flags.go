// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessington-go/internal/config"
)

// stringList is a repeatable flag; each use appends one or more
// comma-separated values.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

var (
	configFile = flag.String("config", "", "YAML configuration file")
	fenFlag    = flag.String("fen", "", "FEN placement to load (default: starting position)")
	playerFlag = flag.String("player", "", "Print moves for every piece of this side (white, black)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat  = flag.String("log-format", "", "Log format: console, json")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	moveFlags stringList
	showFlags stringList
)

func init() {
	flag.Var(&moveFlags, "move", "Relocate a piece before listing, e.g. e2e4 (repeatable)")
	flag.Var(&showFlags, "show", "Print moves for the piece on this square (repeatable)")
}

// applyFlags overrides configuration values with the flags that were given.
func applyFlags(cfg *config.Config) {
	if *fenFlag != "" {
		cfg.Position = *fenFlag
	}
	if *playerFlag != "" {
		cfg.Player = *playerFlag
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if len(moveFlags) > 0 {
		cfg.Moves = append([]string(nil), moveFlags...)
	}
	if len(showFlags) > 0 {
		cfg.Show = append([]string(nil), showFlags...)
	}
}
