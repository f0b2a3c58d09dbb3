package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/app"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/config"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/logger"
)

var (
	verbose   bool
	sessionID string
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "jarvis",
	Short: "Talk to the Jarvis assistant from the terminal",
	Long: `Run the Jarvis pipeline locally without the HTTP server.

Commands that open websites print the URL; folder and application
commands act on this machine.

Quick Start:
  jarvis ask "what's the weather in London?"
  jarvis chat`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&sessionID, "session", "s", "", "Conversation session id")
	rootCmd.AddCommand(askCmd, chatCmd)
}

// bootstrap loads configuration and assembles the assistant
func bootstrap(ctx context.Context) (*app.App, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	zlog := logger.New(level, "console")

	jarvis, err := app.New(ctx, cfg, zlog)
	if err != nil {
		return nil, nil, err
	}
	return jarvis, zlog, nil
}
