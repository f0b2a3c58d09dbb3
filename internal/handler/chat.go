package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/service"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/session"
)

// ErrNoMessage is the error body for a missing or blank message
const ErrNoMessage = "No message provided"

// Assistant is the pipeline behind the chat endpoints
type Assistant interface {
	Handle(ctx context.Context, sessionID, text string) *model.Reply
	Stream(ctx context.Context, sessionID, text string, emit service.EmitFunc) (*model.Reply, error)
}

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	assistant Assistant
	logger    *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(assistant Assistant, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		assistant: assistant,
		logger:    logger.With(zap.String("component", "handler.chat")),
	}
}

// bind decodes the request body and rejects blank messages
func bind(c *gin.Context) (*model.ChatRequest, bool) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return nil, false
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: ErrNoMessage})
		return nil, false
	}
	req.SessionID = session.Normalize(req.SessionID)
	return &req, true
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	req, ok := bind(c)
	if !ok {
		return
	}

	reply := h.assistant.Handle(c.Request.Context(), req.SessionID, req.Message)
	c.JSON(http.StatusOK, reply.ToResponse(req.SessionID))
}

// Stream handles POST /chat/stream - SSE streaming chat
func (h *ChatHandler) Stream(c *gin.Context) {
	req, ok := bind(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/event-stream; charset=utf-8")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Streaming not supported"})
		return
	}

	sendSSE(c, "start", map[string]any{"session_id": req.SessionID})
	flusher.Flush()

	reply, err := h.assistant.Stream(c.Request.Context(), req.SessionID, req.Message, func(event string, data any) error {
		if err := c.Request.Context().Err(); err != nil {
			return err
		}
		sendSSE(c, event, data)
		flusher.Flush()
		return nil
	})
	if err != nil {
		h.logger.Info("stream aborted", zap.String("session_id", req.SessionID), zap.Error(err))
		sendSSE(c, "error", model.ErrorResponse{Error: err.Error()})
		flusher.Flush()
		return
	}

	resp := reply.ToResponse(req.SessionID)
	if reply.Action != nil {
		sendSSE(c, "action", reply.Action)
		flusher.Flush()
	}

	sendSSE(c, "done", resp)
	flusher.Flush()
}

// sendSSE sends a Server-Sent Event
func sendSSE(c *gin.Context, event string, data any) {
	if data == nil {
		fmt.Fprintf(c.Writer, "event: %s\ndata: {}\n\n", event)
		return
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		fmt.Fprintf(c.Writer, "event: error\ndata: {\"error\": \"JSON marshal failed\"}\n\n")
		return
	}
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(jsonData))
}
