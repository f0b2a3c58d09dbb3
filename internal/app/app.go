// Package app wires configuration into a ready-to-use assistant.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/action"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/config"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/intent"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/llm"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/provider"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/repository"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/service"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/session"
)

// App is the assembled pipeline plus the resources it owns
type App struct {
	Assistant  *service.Assistant
	Sessions   *session.Manager
	Repository *repository.PostgresRepository // nil when no database is configured

	cleanup *session.CleanupService
	logger  *zap.Logger
}

// New builds every component from cfg. A configured database that cannot be
// reached is an error.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{logger: logger}

	completer := llm.NewClient(&cfg.OpenAI, logger)
	if cfg.OpenAI.Enabled {
		logger.Info("completion client initialized",
			zap.String("api_base", cfg.OpenAI.APIBase),
			zap.String("model", cfg.OpenAI.ChatModel),
			zap.Float64("temperature", cfg.OpenAI.ChatTemperature),
			zap.Int("max_tokens", cfg.OpenAI.ChatMaxTokens))
	} else {
		logger.Warn("OpenAI is disabled, conversational replies will apologise",
			zap.String("hint", "set OPENAI_API_KEY to enable"))
	}

	weather := provider.NewWeatherClient(&cfg.Weather, logger)
	if !weather.IsEnabled() {
		logger.Info("weather enrichment disabled", zap.String("hint", "set OPENWEATHER_API_KEY to enable"))
	}

	composer := service.NewComposer(service.ComposerConfig{
		Persona: cfg.Assistant.Personality,
		Timeout: cfg.Assistant.EnrichTimeout,
		Workers: cfg.Assistant.EnrichWorkers,
	}, service.Sources{
		Clock:     provider.NewClock(),
		Weather:   weather,
		Stocks:    provider.NewStockClient(&cfg.Stocks, logger),
		Crypto:    provider.NewCryptoClient(&cfg.Crypto, logger),
		Telemetry: provider.NewTelemetry(cfg.System.CPUSampleInterval, logger),
	}, logger)

	a.Sessions = session.NewManager(cfg.Assistant.HistoryLimit, cfg.Assistant.SessionTTL)

	deps := service.Dependencies{
		Router:    intent.NewRouter(),
		Composer:  composer,
		Completer: completer,
		Sessions:  a.Sessions,
		Folders:   action.NewFolders(cfg.System.FolderBaseDir, logger),
		Apps:      action.NewLauncher(logger),
	}

	if cfg.PostgreSQL.Enabled {
		repo, err := repository.NewPostgresRepository(cfg.PostgreSQL.DSN, cfg.PostgreSQL.MaxConnections, cfg.PostgreSQL.MaxIdleConnections)
		if err != nil {
			return nil, err
		}
		schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(schemaCtx); err != nil {
			_ = repo.Close()
			return nil, fmt.Errorf("interaction log: %w", err)
		}
		a.Repository = repo
		deps.Interactions = repo
		logger.Info("interaction log enabled")
	}

	a.Assistant = service.NewAssistant(deps, logger)
	a.cleanup = session.NewCleanupService(a.Sessions, session.DefaultCleanupInterval, logger)
	return a, nil
}

// Start launches background work
func (a *App) Start(ctx context.Context) {
	a.cleanup.Start(ctx)
}

// Close stops background work and releases resources
func (a *App) Close() error {
	a.cleanup.Stop()
	if a.Repository != nil {
		return a.Repository.Close()
	}
	return nil
}
