package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "OPENAI_API_KEY", "OPENWEATHER_API_KEY", "DATABASE_URL", "PG_DSN",
		"DEBUG", "FLASK_DEBUG", "GIN_MODE", "HISTORY_LIMIT", "ENRICH_TIMEOUT", "ASSISTANT_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, DefaultAssistantName, cfg.Assistant.Name)
	assert.Equal(t, 10, cfg.Assistant.HistoryLimit)
	assert.Equal(t, 6*time.Second, cfg.Assistant.EnrichTimeout)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.ChatModel)
	assert.Equal(t, 150, cfg.OpenAI.ChatMaxTokens)
	assert.Equal(t, 0.7, cfg.OpenAI.ChatTemperature)
	assert.False(t, cfg.OpenAI.Enabled)
	assert.False(t, cfg.Weather.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Stocks.Timeout)
	assert.Equal(t, time.Second, cfg.System.CPUSampleInterval)
	assert.False(t, cfg.PostgreSQL.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENWEATHER_API_KEY", "abc")
	t.Setenv("FLASK_DEBUG", "true")
	t.Setenv("HISTORY_LIMIT", "4")
	t.Setenv("SESSION_TTL", "90s")
	t.Setenv("ENRICH_TIMEOUT", "3")
	t.Setenv("DATABASE_URL", "postgres://localhost/jarvis")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.OpenAI.Enabled)
	assert.True(t, cfg.Weather.Enabled)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, 4, cfg.Assistant.HistoryLimit)
	assert.Equal(t, 90*time.Second, cfg.Assistant.SessionTTL)
	assert.Equal(t, 3*time.Second, cfg.Assistant.EnrichTimeout)
	assert.True(t, cfg.PostgreSQL.Enabled)
	assert.Equal(t, "postgres://localhost/jarvis", cfg.PostgreSQL.DSN)
}

func TestLoad_PlaceholderWeatherKeyDisables(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", placeholderWeatherKey)

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Weather.Enabled)
}

func TestGetEnvHelpers_InvalidFallsBack(t *testing.T) {
	t.Setenv("X_INT", "ten")
	t.Setenv("X_FLOAT", "warm")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_DUR", "soon")

	assert.Equal(t, 7, getEnvAsInt("X_INT", 7))
	assert.Equal(t, 0.5, getEnvAsFloat("X_FLOAT", 0.5))
	assert.True(t, getEnvAsBool("X_BOOL", true))
	assert.Equal(t, time.Minute, getEnvAsDuration("X_DUR", time.Minute))
}
