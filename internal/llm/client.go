package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/config"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// ErrDisabled is returned when no API key is configured
var ErrDisabled = errors.New("OpenAI API is not enabled (missing API key)")

// ErrEmptyCompletion is returned when the API answers without choices
var ErrEmptyCompletion = errors.New("no response from completion API")

// Client handles OpenAI-compatible chat completion calls
type Client struct {
	config      *config.OpenAIConfig
	httpClient  *http.Client
	chunkParser StreamChunkParser
	logger      *zap.Logger
}

// NewClient creates a completion client, picking the chunk parser from the base URL
func NewClient(cfg *config.OpenAIConfig, logger *zap.Logger) *Client {
	logger = logger.With(zap.String("component", "llm"))

	var parser StreamChunkParser
	switch {
	case IsNVIDIAProvider(cfg.APIBase):
		parser = &NVIDIAStreamChunkParser{}
		logger.Info("detected NVIDIA API provider", zap.String("base", cfg.APIBase))
	case IsOpenAIProvider(cfg.APIBase):
		parser = &OpenAIStreamChunkParser{}
	default:
		parser = &OpenAIStreamChunkParser{}
		logger.Info("using standard OpenAI stream format", zap.String("base", cfg.APIBase))
	}

	return &Client{
		config:      cfg,
		chunkParser: parser,
		logger:      logger,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// IsEnabled returns whether the client is configured and ready
func (c *Client) IsEnabled() bool {
	return c.config.Enabled
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream,omitempty"`
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// StreamChunk is one parsed delta of a streaming completion
type StreamChunk struct {
	Content string
	// ThinkingContent carries provider reasoning output, e.g. DeepSeek on NVIDIA
	ThinkingContent string
	Role            string
	Done            bool
}

// StreamCallback is called for each chunk in streaming mode
type StreamCallback func(chunk *StreamChunk) error

// Messages renders a system prompt followed by history turns
func Messages(system string, turns []model.Turn) []ChatMessage {
	msgs := make([]ChatMessage, 0, len(turns)+1)
	msgs = append(msgs, ChatMessage{Role: model.RoleSystem, Content: system})
	for _, t := range turns {
		msgs = append(msgs, ChatMessage{Role: t.Role, Content: t.Content})
	}
	return msgs
}

// Complete sends system + turns and returns the first choice's content
func (c *Client) Complete(ctx context.Context, system string, turns []model.Turn) (string, error) {
	resp, err := c.ChatCompletion(ctx, ChatCompletionRequest{Messages: Messages(system, turns)})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// CompleteStream streams a completion, calling onThinking and onContent per
// delta, and returns the accumulated content.
func (c *Client) CompleteStream(ctx context.Context, system string, turns []model.Turn, onThinking, onContent func(string) error) (string, error) {
	var full strings.Builder
	err := c.ChatCompletionStream(ctx, ChatCompletionRequest{Messages: Messages(system, turns)}, func(chunk *StreamChunk) error {
		if chunk.ThinkingContent != "" && onThinking != nil {
			if err := onThinking(chunk.ThinkingContent); err != nil {
				return err
			}
		}
		if chunk.Content != "" {
			full.WriteString(chunk.Content)
			if onContent != nil {
				if err := onContent(chunk.Content); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(full.String()), nil
}

func (c *Client) applyDefaults(req *ChatCompletionRequest) {
	if req.Model == "" {
		req.Model = c.config.ChatModel
	}
	if req.Temperature == 0 && c.config.ChatTemperature > 0 {
		req.Temperature = c.config.ChatTemperature
	}
	if req.MaxTokens == 0 && c.config.ChatMaxTokens > 0 {
		req.MaxTokens = c.config.ChatMaxTokens
	}
}

func (c *Client) newRequest(ctx context.Context, req ChatCompletionRequest) (*http.Request, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", strings.TrimRight(c.config.APIBase, "/"))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))
	return httpReq, nil
}

// ChatCompletion performs a chat completion request
func (c *Client) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if !c.config.Enabled {
		return nil, ErrDisabled
	}
	c.applyDefaults(&req)
	req.Stream = false

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	c.logger.Debug("completion finished",
		zap.String("model", result.Model),
		zap.Int("total_tokens", result.Usage.TotalTokens))
	return &result, nil
}

// ChatCompletionStream performs a streaming chat completion request
func (c *Client) ChatCompletionStream(ctx context.Context, req ChatCompletionRequest, callback StreamCallback) error {
	if !c.config.Enabled {
		return ErrDisabled
	}
	c.applyDefaults(&req)
	req.Stream = true

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read stream: %w", err)
		}
		eof := err != nil

		line = bytes.TrimSpace(line)
		if data, ok := bytes.CutPrefix(line, []byte("data:")); ok {
			data = bytes.TrimSpace(data)
			if bytes.Equal(data, []byte("[DONE]")) {
				return nil
			}

			chunk, perr := c.chunkParser.ParseChunk(data)
			if perr != nil {
				c.logger.Warn("failed to parse stream chunk", zap.Error(perr))
			} else if cerr := callback(chunk); cerr != nil {
				return fmt.Errorf("callback error: %w", cerr)
			}
		}

		if eof {
			return nil
		}
	}
}
