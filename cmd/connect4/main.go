package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/connect4-ai/internal/config"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/iamasit07/connect4-ai/internal/transport/terminal"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	config.LoadEnv()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logFile, err := config.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// 1. Engine
	engine := bot.NewEngine(
		bot.WithStrategy(bot.ParseStrategy(cfg.Strategy)),
		bot.WithDepth(cfg.SearchDepth),
		bot.WithWorkers(cfg.Workers),
		bot.WithSeed(cfg.Seed),
	)

	// 2. Presentation and session
	rng := rand.New(rand.NewSource(cfg.Seed + 1))
	ui := terminal.New(terminal.Options{
		AIMoveDelay: cfg.AIMoveDelay,
		FirstTurn:   cfg.FirstTurn,
		Mouse:       cfg.Mouse,
		Rng:         rng,
	})
	session := game.NewSession(engine, game.ChooseFirst(cfg.FirstTurn, rng), ui)
	ui.Attach(session)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info().Msg("Shutting down...")
		ui.Stop()
	}()

	log.Info().
		Str("strategy", engine.Strategy().String()).
		Int("depth", engine.Depth()).
		Uint64("seed", cfg.Seed).
		Msg("Game starting")

	if err := ui.Run(); err != nil {
		log.Error().Err(err).Msg("Terminal UI error")
		fmt.Fprintln(os.Stderr, "terminal error:", err)
		os.Exit(1)
	}

	log.Info().Msg("Game exited gracefully")
}
