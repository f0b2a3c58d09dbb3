package handler

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/config"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/session"
)

// RouterDeps holds everything the HTTP surface needs
type RouterDeps struct {
	Assistant     Assistant
	Sessions      *session.Manager
	History       InteractionHistory // optional
	AssistantName string
	Version       string
	Server        config.ServerConfig
	Logger        *zap.Logger
}

// NewRouter builds the gin engine with middleware and all routes
func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(d.Logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		d.Logger.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{Error: fmt.Sprint(recovered)})
	}))

	corsConfig := cors.DefaultConfig()
	origins := splitList(d.Server.AllowedOrigins)
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = splitList(d.Server.AllowedMethods)
	corsConfig.AllowHeaders = splitList(d.Server.AllowedHeaders)
	router.Use(cors.New(corsConfig))

	health := NewHealthHandler(d.AssistantName, d.Version)
	chat := NewChatHandler(d.Assistant, d.Logger)
	sessions := NewSessionHandler(d.Sessions, d.History, d.Logger)

	router.GET("/", health.Root)
	router.GET("/health", health.Health)
	router.GET("/version", health.Version)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/chat", chat.Chat)
	router.POST("/chat/stream", chat.Stream)
	router.POST("/chat/session", sessions.NewSession)
	router.GET("/chat/session/:id", sessions.History)
	router.DELETE("/chat/session/:id", sessions.Reset)

	return router
}

// requestLogger logs one line per request
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	logger = logger.With(zap.String("component", "http"))
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(started)),
			zap.String("client_ip", c.ClientIP()))
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
