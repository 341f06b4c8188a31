package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Strategy    string
	SearchDepth int
	Workers     int
	Seed        uint64
	AIMoveDelay time.Duration
	FirstTurn   string
	Mouse       bool
	LogLevel    string
	LogFile     string
	ArenaGames  int
	// strategy of the engine playing the player discs in the arena
	ArenaOpponent string
}

var AppConfig *Config

// LoadEnv reads .env from the working directory or its parent. A missing
// file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Msg("No .env file found")
		}
	}
}

func LoadConfig() *Config {
	seed := uint64(time.Now().UnixNano())
	if raw := GetEnv("AI_SEED", ""); raw != "" && raw != "0" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			seed = v
		} else {
			log.Warn().Str("key", "AI_SEED").Str("value", raw).Msg("Invalid seed, using the clock")
		}
	}

	AppConfig = &Config{
		Strategy:      GetEnv("AI_STRATEGY", "alphabeta"),
		SearchDepth:   GetEnvAsInt("AI_DEPTH", 3),
		Workers:       GetEnvAsInt("AI_WORKERS", 1),
		Seed:          seed,
		AIMoveDelay:   time.Duration(GetEnvAsInt("AI_MOVE_DELAY_MS", 300)) * time.Millisecond,
		FirstTurn:     GetEnv("FIRST_TURN", "random"),
		Mouse:         GetEnvAsBool("MOUSE_ENABLED", true),
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		LogFile:       GetEnv("LOG_FILE", "connect4.log"),
		ArenaGames:    GetEnvAsInt("ARENA_GAMES", 10),
		ArenaOpponent: GetEnv("ARENA_OPPONENT", "greedy"),
	}

	return AppConfig
}

func (c *Config) Validate() error {
	if c.SearchDepth < 0 {
		return fmt.Errorf("AI_DEPTH must not be negative, got %d", c.SearchDepth)
	}
	if c.Workers < 1 {
		return fmt.Errorf("AI_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.AIMoveDelay < 0 {
		return fmt.Errorf("AI_MOVE_DELAY_MS must not be negative, got %s", c.AIMoveDelay)
	}
	if c.ArenaGames < 0 {
		return fmt.Errorf("ARENA_GAMES must not be negative, got %d", c.ArenaGames)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Msgf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
