package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config application configuration
type Config struct {
	// IMAP mailbox the confirmation emails arrive in
	IMAPServer   string        `env:"IMAP_SERVER,required"` // e.g., imap.gmail.com:993
	IMAPEmail    string        `env:"IMAP_EMAIL,required"`
	IMAPPassword string        `env:"IMAP_PASSWORD,required"`
	DialTimeout  time.Duration `env:"IMAP_DIAL_TIMEOUT" envDefault:"30s"`

	// Scan cadence
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"5m"`

	// Database
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/apptrack.db"`

	// Analysis tuning
	DedupWindowDays int `env:"DEDUP_WINDOW_DAYS" envDefault:"7"`
	GapDays         int `env:"GAP_DAYS" envDefault:"7"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // "json" or "text"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DedupWindowDays < 0 {
		return nil, fmt.Errorf("DEDUP_WINDOW_DAYS must not be negative, got %d", cfg.DedupWindowDays)
	}
	if cfg.GapDays < 1 {
		return nil, fmt.Errorf("GAP_DAYS must be at least 1, got %d", cfg.GapDays)
	}

	return cfg, nil
}
