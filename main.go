package main

import (
	"flag"
	"fmt"
	"os"

	"dungeon-roguelike/internal/config"
	"dungeon-roguelike/internal/game"
	"dungeon-roguelike/internal/logger"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	seed := flag.Int64("seed", 0, "Random seed (overrides config; 0 picks one from the clock)")
	flag.Parse()

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Level.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// The terminal owns stdout and stderr, so logs only go to a file.
	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = "dungeon.log"
	}
	closer := logger.Init(cfg.Logging)
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	game.New(screen, cfg.Level).Run()
	return nil
}
