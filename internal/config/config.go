// internal/config/config.go
//
// Process configuration from the environment.
//
// Load() first reads a .env file from the working directory when one exists
// (github.com/joho/godotenv; variables already set in the environment win),
// then fills Config from environment variables, applying defaults for unset
// or empty values. Malformed numbers and durations are errors rather than
// silently replaced by defaults.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Markaronin/wordle-solver/internal/feedback"
	"github.com/Markaronin/wordle-solver/internal/words"
)

// Config holds every environment-driven setting.
type Config struct {
	LogLevel zerolog.Level

	Port   string
	DBPath string // empty selects the in-memory store

	Words words.Sources

	JWTSecret    string
	JWTExpiry    time.Duration
	ClientOrigin string

	DailySalt    string
	SolveTimeout time.Duration

	// Feedback is the default feedback for the solve command.
	Feedback feedback.Spec
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() (*Config, error) {
	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	hours, err := strconv.Atoi(getEnv("JWT_EXPIRES_HOURS", "24"))
	if err != nil || hours <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRES_HOURS: want a positive integer, got %q", os.Getenv("JWT_EXPIRES_HOURS"))
	}
	timeout, err := time.ParseDuration(getEnv("SOLVE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("SOLVE_TIMEOUT: %w", err)
	}

	return &Config{
		LogLevel: lvl,
		Port:     getEnv("PORT", "5175"),
		DBPath:   os.Getenv("DB_PATH"),
		Words: words.Sources{
			Answers: os.Getenv("WORDS_ANSWERS_FILE"),
			Guesses: os.Getenv("WORDS_ALLOWED_FILE"),
		},
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTExpiry:    time.Duration(hours) * time.Hour,
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DailySalt:    os.Getenv("DAILY_SALT"),
		SolveTimeout: timeout,
		Feedback: feedback.Spec{
			Greens:  os.Getenv("FEEDBACK_GREENS"),
			Yellows: os.Getenv("FEEDBACK_YELLOWS"),
			Greys:   os.Getenv("FEEDBACK_GREYS"),
		},
	}, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
