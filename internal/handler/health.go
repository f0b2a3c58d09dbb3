package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// Banner is the GET / message
const Banner = "Jarvis AI Assistant Backend is running!"

// HealthHandler reports liveness and build information
type HealthHandler struct {
	assistantName string
	version       string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(assistantName, version string) *HealthHandler {
	return &HealthHandler{assistantName: assistantName, version: version}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:    "healthy",
		Assistant: h.assistantName,
		Version:   h.version,
	})
}

// Version handles GET /version
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.version})
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": Banner})
}
