package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/config"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse()
	require.NoError(t, err)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 3, cfg.MinLength)
	assert.Equal(t, 5, cfg.WordBonus)
	assert.Equal(t, config.ModeRandom, cfg.RootWordMode)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.StartWordsFile)
	assert.Empty(t, cfg.DictionaryDB)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MIN_WORD_LENGTH", "4")
	t.Setenv("WORD_BONUS", "7")
	t.Setenv("ROOT_WORD_MODE", "daily")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("START_WORDS_FILE", "/tmp/start.txt")

	cfg, err := config.Parse()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 4, cfg.MinLength)
	assert.Equal(t, 7, cfg.WordBonus)
	assert.Equal(t, config.ModeDaily, cfg.RootWordMode)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "/tmp/start.txt", cfg.StartWordsFile)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MIN_WORD_LENGTH", "0"},
		{"MIN_WORD_LENGTH", "three"},
		{"WORD_BONUS", "0"},
		{"ROOT_WORD_MODE", "weekly"},
		{"SESSION_TTL", "-1h"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Parse()
			assert.Error(t, err)
		})
	}
}
