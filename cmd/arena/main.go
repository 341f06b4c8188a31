package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect4-ai/internal/config"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/rs/zerolog/log"
)

// arena plays the configured engine (AI_STRATEGY) against ARENA_OPPONENT and
// prints the tally.
func main() {
	config.LoadEnv()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	if cfg.LogFile == "connect4.log" {
		cfg.LogFile = "-"
	}

	logFile, err := config.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	first := bot.NewEngine(
		bot.WithStrategy(bot.ParseStrategy(cfg.Strategy)),
		bot.WithDepth(cfg.SearchDepth),
		bot.WithWorkers(cfg.Workers),
		bot.WithSeed(cfg.Seed),
	)
	second := bot.NewEngine(
		bot.WithStrategy(bot.ParseStrategy(cfg.ArenaOpponent)),
		bot.WithDepth(cfg.SearchDepth),
		bot.WithWorkers(cfg.Workers),
		bot.WithSeed(cfg.Seed+1),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	res, err := game.PlayMatch(ctx, first, second, cfg.ArenaGames)
	if err != nil {
		log.Error().Err(err).Msg("[ARENA] match aborted")
	}

	log.Info().
		Str("first", first.Strategy().String()).
		Str("second", second.Strategy().String()).
		Int("first_wins", res.FirstWins).
		Int("second_wins", res.SecondWins).
		Int("draws", res.Draws).
		Int("moves", res.TotalMoves).
		Dur("elapsed", time.Since(start)).
		Msg("[ARENA] match finished")

	fmt.Printf("%s vs %s: %d-%d (%d draws) over %d games\n",
		first.Strategy(), second.Strategy(), res.FirstWins, res.SecondWins, res.Draws, res.Games())
}
