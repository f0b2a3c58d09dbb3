package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/session"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// InteractionHistory reads interactions persisted by the interaction log
type InteractionHistory interface {
	RecentInteractions(ctx context.Context, sessionID string, limit int) ([]model.Interaction, error)
}

// SessionHandler exposes conversation history management
type SessionHandler struct {
	sessions *session.Manager
	history  InteractionHistory
	logger   *zap.Logger
}

// NewSessionHandler creates a new session handler. history may be nil.
func NewSessionHandler(sessions *session.Manager, history InteractionHistory, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		history:  history,
		logger:   logger.With(zap.String("component", "handler.session")),
	}
}

type historyResponse struct {
	SessionID    string              `json:"session_id"`
	Turns        []model.Turn        `json:"turns"`
	Interactions []model.Interaction `json:"interactions,omitempty"`
}

// History handles GET /chat/session/:id. The live window is returned together
// with persisted interactions, newest first, when the interaction log is on.
func (h *SessionHandler) History(c *gin.Context) {
	id := session.Normalize(c.Param("id"))
	resp := historyResponse{SessionID: id, Turns: []model.Turn{}}

	s, live := h.sessions.Get(id)
	if live {
		resp.Turns = s.Turns()
	}

	if h.history != nil {
		interactions, err := h.history.RecentInteractions(c.Request.Context(), id, historyLimit(c.Query("limit")))
		if err != nil {
			h.logger.Error("failed to read interaction history", zap.String("session_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to read history"})
			return
		}
		resp.Interactions = interactions
	}

	if !live && len(resp.Interactions) == 0 {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Session not found"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reset handles DELETE /chat/session/:id
func (h *SessionHandler) Reset(c *gin.Context) {
	id := session.Normalize(c.Param("id"))
	if !h.sessions.Reset(id) {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": id, "cleared": true})
}

// NewSession handles POST /chat/session and issues a fresh id
func (h *SessionHandler) NewSession(c *gin.Context) {
	id := session.NewID()
	h.sessions.GetOrCreate(id)
	c.JSON(http.StatusCreated, gin.H{"session_id": id})
}

func historyLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultHistoryLimit
	}
	return min(n, maxHistoryLimit)
}
