package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/app"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/config"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/handler"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level := cfg.Logging.Level
	if cfg.Debug {
		level = "debug"
	}
	zlog := logger.New(level, cfg.Logging.Format)
	defer func() { _ = zlog.Sync() }()

	zlog.Info("starting Jarvis backend",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit))

	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jarvis, err := app.New(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize services", zap.Error(err))
	}
	jarvis.Start(ctx)

	deps := handler.RouterDeps{
		Assistant:     jarvis.Assistant,
		Sessions:      jarvis.Sessions,
		AssistantName: cfg.Assistant.Name,
		Version:       Version,
		Server:        cfg.Server,
		Logger:        zlog,
	}
	if jarvis.Repository != nil {
		deps.History = jarvis.Repository
	}
	router := handler.NewRouter(deps)
	setupStaticFiles(router, cfg.Server.StaticDir, zlog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := jarvis.Close(); err != nil {
		zlog.Error("failed to release resources", zap.Error(err))
	}
	zlog.Info("server stopped")
}
