package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/config"
)

func TestNew_WithoutExternalServices(t *testing.T) {
	cfg := &config.Config{
		Assistant: config.AssistantConfig{
			Personality:   "You are Jarvis.",
			HistoryLimit:  10,
			SessionTTL:    time.Minute,
			EnrichTimeout: time.Second,
		},
		OpenAI:  config.OpenAIConfig{APIBase: "https://api.openai.com/v1", Timeout: 1},
		Weather: config.WeatherConfig{Timeout: time.Second},
		Stocks:  config.StocksConfig{Timeout: time.Second},
		Crypto:  config.CryptoConfig{Timeout: time.Second},
		System:  config.SystemConfig{FolderBaseDir: t.TempDir(), CPUSampleInterval: 10 * time.Millisecond},
	}

	a, err := New(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Nil(t, a.Repository)

	a.Start(context.Background())
	defer func() { assert.NoError(t, a.Close()) }()

	reply := a.Assistant.Handle(context.Background(), "", `create folder "Reports"`)
	assert.Contains(t, reply.Message, "Created folder 'Reports' at ")

	reply = a.Assistant.Handle(context.Background(), "", "tell me a joke")
	assert.Contains(t, reply.Message, "I'm sorry, I'm having trouble processing that request.")
}
