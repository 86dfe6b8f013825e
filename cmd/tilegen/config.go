package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config represents the command-line parameters for tilegen.
type Config struct {
	Seed     string // Empty means prompt on stdin
	Random   bool
	Render   string
	Field    string
	LogLevel string
}

// NewConfig returns a Config populated from the environment, falling back to defaults.
func NewConfig() *Config {
	return &Config{
		Seed:     os.Getenv("TILEGEN_SEED"),
		Render:   envOrDefault("TILEGEN_RENDER", "auto"),
		Field:    envOrDefault("TILEGEN_FIELD", "worley"),
		LogLevel: envOrDefault("TILEGEN_LOG_LEVEL", "info"),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Seed, "seed", c.Seed, "decimal seed 0-65535 (prompted for when empty)")
	fs.BoolVar(&c.Random, "random", c.Random, "use a random seed instead of prompting")
	fs.StringVar(&c.Render, "render", c.Render, "renderer: auto, plain or cursor")
	fs.StringVar(&c.Field, "field", c.Field, "noise field: worley or simplex")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
