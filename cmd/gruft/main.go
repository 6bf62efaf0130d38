// Gruft is a small terminal roguelike. The program boots a screen
// driver, then loops between the main menu and one dungeon run per
// game until the player leaves.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/gruftwerk/gruft/internal/config"
	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/game"
	"github.com/gruftwerk/gruft/internal/game/scenes"
	"github.com/gruftwerk/gruft/internal/scene"
)

// defaultName fills in for players who skip the name field.
const defaultName = "Rodney"

func main() {
	configPath := flag.String("config", "gruft.yml", "configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log := zerolog.New(logFile).Level(level).With().Timestamp().Logger()

	screen, err := console.Open(cfg.Driver)
	if err != nil {
		return fmt.Errorf("open %s driver: %w", cfg.Driver, err)
	}
	defer screen.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Info().Str("driver", cfg.Driver).Int64("seed", seed).Msg("starting")

	engine := scene.NewEngine(screen, cfg.ScreenSize(), log.With().Str("component", "engine").Logger())

	for {
		settings, err := scene.Run(engine, &scenes.Settings{}, scenes.NewMenu(rng.Int63()))
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if !settings.Start {
			log.Info().Msg("leaving")
			return nil
		}

		name := settings.Name
		if name == "" {
			name = defaultName
		}
		g := game.New(name, cfg.Params(), rng, log.With().Str("component", "game").Logger())
		if _, err := scene.Run(engine, g, scenes.NewWorld(engine)); err != nil {
			return fmt.Errorf("game: %w", err)
		}
	}
}
