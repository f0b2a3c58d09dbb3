package model

// ActionOpenWebsite is the only client-side action the backend emits
const ActionOpenWebsite = "open_website"

// Role values for conversation turns
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatRequest represents a POST /chat body
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse represents a POST /chat reply
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
	Action    string `json:"action,omitempty"`
	URL       string `json:"url,omitempty"`
}

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the GET /health reply
type HealthResponse struct {
	Status    string `json:"status"`
	Assistant string `json:"assistant"`
	Version   string `json:"version,omitempty"`
}

// Turn is one entry of a conversation history
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Action is a client-side instruction attached to a reply
type Action struct {
	Type string `json:"action"`
	URL  string `json:"url"`
}

// Reply is what the assistant produces for one utterance. Action is set only
// for website intents.
type Reply struct {
	Message string
	Action  *Action
	Intent  Intent
}

// ToResponse converts a reply into its wire form
func (r *Reply) ToResponse(sessionID string) ChatResponse {
	resp := ChatResponse{Response: r.Message, SessionID: sessionID}
	if r.Action != nil {
		resp.Action = r.Action.Type
		resp.URL = r.Action.URL
	}
	return resp
}
