package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// setupStaticFiles serves the web client from dir under /app when dir exists.
// index.html is served for /app/ by the file server.
func setupStaticFiles(router *gin.Engine, dir string, logger *zap.Logger) {
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "endpoint not found"})
	})

	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("static directory not found, web client disabled", zap.String("dir", dir))
		return
	}

	logger.Info("serving web client from local filesystem", zap.String("dir", dir))
	router.Static("/app", dir)
}
