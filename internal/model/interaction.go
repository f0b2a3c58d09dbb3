package model

import "time"

// Interaction is one handled utterance as written to the interaction log
type Interaction struct {
	ID        int64     `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"session_id"`
	Intent    string    `db:"intent" json:"intent"`
	Message   string    `db:"message" json:"message"`
	Response  string    `db:"response" json:"response"`
	Action    string    `db:"action" json:"action,omitempty"`
	URL       string    `db:"url" json:"url,omitempty"`
	Snippets  []string  `db:"snippets" json:"snippets,omitempty"` // providers that contributed context
	Failed    bool      `db:"failed" json:"failed"`
	LatencyMS int64     `db:"latency_ms" json:"latency_ms"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
