package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The wall-clock budget for the whole run.")
	games := flag.Int("games", 10, "The number of games to play.")
	seed := flag.Uint64("seed", 1, "Seed of the first game. Game i uses seed+i.")
	configPath := flag.String("config", "", "Path to a YAML config file.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatal().Err(err).Msg("failed to load .env")
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	log.Info().
		Int("games", *games).
		Uint64("seed", *seed).
		Dur("duration", *duration).
		Msg("starting simulation")

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report := Simulate(ctx, cfg, Options{
		Games:        *games,
		Seed:         *seed,
		FrameTime:    time.Second / time.Duration(cfg.FrameRate),
		ActionChance: 0.3,
	}, log.Logger)

	log.Info().Int("played", len(report.Results)).Dur("elapsed", report.TotalTime).Msg("simulation finished")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
