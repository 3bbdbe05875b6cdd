// chessington prints the candidate moves of chess pieces in a position.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessington-go/internal/config"
	"github.com/lgbarn/chessington-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessington version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log, zapcore.Lock(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("configuration loaded",
		zap.String("position", cfg.Position),
		zap.Strings("moves", cfg.Moves),
		zap.Strings("show", cfg.Show),
		zap.String("player", cfg.Player),
	)

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// loadConfig reads the config file (if any), then applies flags on top.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessington [options]\n\n")
	fmt.Fprintf(os.Stderr, "Lists the squares chess pieces could move to under simplified rules.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExample:\n")
	fmt.Fprintf(os.Stderr, "  chessington -move e2e4 -show e4 -show g1 -player black\n")
}
