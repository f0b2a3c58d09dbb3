package llm

import (
	"encoding/json"
	"strings"
)

// StreamChunkParser converts one provider-specific SSE payload to a StreamChunk
type StreamChunkParser interface {
	ParseChunk(data []byte) (*StreamChunk, error)
}

// OpenAIStreamChunkParser parses standard OpenAI-format streaming chunks
type OpenAIStreamChunkParser struct{}

// ParseChunk implements StreamChunkParser
func (p *OpenAIStreamChunkParser) ParseChunk(data []byte) (*StreamChunk, error) {
	var raw struct {
		Choices []struct {
			Delta struct {
				Role    string `json:"role,omitempty"`
				Content string `json:"content,omitempty"`
			} `json:"delta"`
			FinishReason *string `json:"finish_reason,omitempty"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	chunk := &StreamChunk{}
	if len(raw.Choices) > 0 {
		choice := raw.Choices[0]
		chunk.Role = choice.Delta.Role
		chunk.Content = choice.Delta.Content
		chunk.Done = choice.FinishReason != nil && *choice.FinishReason != ""
	}
	return chunk, nil
}

// NVIDIAStreamChunkParser parses chunks carrying reasoning_content
type NVIDIAStreamChunkParser struct{}

// ParseChunk implements StreamChunkParser
func (p *NVIDIAStreamChunkParser) ParseChunk(data []byte) (*StreamChunk, error) {
	var raw struct {
		Choices []struct {
			Delta struct {
				Role             string  `json:"role,omitempty"`
				Content          string  `json:"content,omitempty"`
				ReasoningContent *string `json:"reasoning_content,omitempty"`
			} `json:"delta"`
			FinishReason *string `json:"finish_reason,omitempty"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	chunk := &StreamChunk{}
	if len(raw.Choices) > 0 {
		choice := raw.Choices[0]
		chunk.Role = choice.Delta.Role
		chunk.Content = choice.Delta.Content
		if choice.Delta.ReasoningContent != nil {
			chunk.ThinkingContent = *choice.Delta.ReasoningContent
		}
		chunk.Done = choice.FinishReason != nil && *choice.FinishReason != ""
	}
	return chunk, nil
}

// IsOpenAIProvider checks if the base URL is the official OpenAI API
func IsOpenAIProvider(baseURL string) bool {
	return strings.Contains(baseURL, "api.openai.com")
}

// IsNVIDIAProvider checks if the base URL is the NVIDIA API
func IsNVIDIAProvider(baseURL string) bool {
	return strings.Contains(baseURL, "integrate.api.nvidia.com")
}
