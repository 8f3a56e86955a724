package game

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed  = "DUNGEONCRAWL_SEED"
	EnvLevel = "DUNGEONCRAWL_LEVEL"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible level generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Level names the preset from levels.json. Empty selects the first preset.
	Level string
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{Level: os.Getenv(EnvLevel)}

	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvSeed, raw, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// ResolveSeed returns the configured seed, or a time-based one when it is 0.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
