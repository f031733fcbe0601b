// Package config loads server settings from the environment.
//
// A .env file in the working directory is loaded first (development only;
// it never overrides variables already set), then the Config struct is
// filled from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Root word modes.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Config holds every tunable of the server.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Word lists. Empty paths use the embedded defaults.
	StartWordsFile string `env:"START_WORDS_FILE"`
	DictionaryFile string `env:"DICTIONARY_FILE"`
	// When set, the dictionary lives in this SQLite file and
	// DICTIONARY_FILE (or the embedded list) is imported into it.
	DictionaryDB string `env:"DICTIONARY_DB"`

	Locale    string `env:"GAME_LOCALE" envDefault:"en"`
	MinLength int    `env:"MIN_WORD_LENGTH" envDefault:"3"`
	WordBonus int    `env:"WORD_BONUS" envDefault:"5"`

	RootWordMode string `env:"ROOT_WORD_MODE" envDefault:"random"`
	DailySalt    string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieName   string        `env:"COOKIE_NAME" envDefault:"wordscramble_token"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse fills a Config from the current environment and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.MinLength < 1 {
		return fmt.Errorf("config: MIN_WORD_LENGTH must be >= 1, got %d", c.MinLength)
	}
	if c.WordBonus < 1 {
		return fmt.Errorf("config: WORD_BONUS must be >= 1, got %d", c.WordBonus)
	}
	if c.RootWordMode != ModeRandom && c.RootWordMode != ModeDaily {
		return fmt.Errorf("config: ROOT_WORD_MODE must be %q or %q, got %q", ModeRandom, ModeDaily, c.RootWordMode)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET must not be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}
