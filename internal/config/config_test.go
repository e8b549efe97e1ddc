package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Markaronin/wordle-solver/internal/feedback"
)

var allVars = []string{
	"LOG_LEVEL", "PORT", "DB_PATH", "WORDS_ANSWERS_FILE", "WORDS_ALLOWED_FILE",
	"JWT_SECRET", "JWT_EXPIRES_HOURS", "CLIENT_ORIGIN", "DAILY_SALT", "SOLVE_TIMEOUT",
	"FEEDBACK_GREENS", "FEEDBACK_YELLOWS", "FEEDBACK_GREYS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "5175", cfg.Port)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, "dev_secret_change_me", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10*time.Second, cfg.SolveTimeout)
	assert.True(t, cfg.Feedback.IsZero())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "8080")
	t.Setenv("WORDS_ANSWERS_FILE", "answers.txt")
	t.Setenv("JWT_EXPIRES_HOURS", "2")
	t.Setenv("SOLVE_TIMEOUT", "1m")
	t.Setenv("FEEDBACK_YELLOWS", ",,a,tn,t")
	t.Setenv("FEEDBACK_GREYS", "roecli")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "answers.txt", cfg.Words.Answers)
	assert.Empty(t, cfg.Words.Guesses)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, time.Minute, cfg.SolveTimeout)
	assert.Equal(t, feedback.Spec{Yellows: ",,a,tn,t", Greys: "roecli"}, cfg.Feedback)
}

func TestFromEnv_Invalid(t *testing.T) {
	for k, v := range map[string]string{
		"LOG_LEVEL":         "loud",
		"JWT_EXPIRES_HOURS": "soon",
		"SOLVE_TIMEOUT":     "10",
	} {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			_, err := FromEnv()
			assert.ErrorContains(t, err, k)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("PORT")
	os.Unsetenv("DAILY_SALT")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9999\nDAILY_SALT=pepper\n"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "pepper", cfg.DailySalt)
}
