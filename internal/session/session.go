// Package session keeps bounded per-conversation turn histories in memory.
package session

import (
	"sync"
	"time"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// DefaultHistoryLimit is the number of most recent turns a session keeps
const DefaultHistoryLimit = 10

// Session is one conversation's sliding window of turns
type Session struct {
	id           string
	limit        int
	turns        []model.Turn
	lastActivity time.Time
	mu           sync.Mutex
}

func newSession(id string, limit int, now time.Time) *Session {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Session{id: id, limit: limit, lastActivity: now}
}

// ID returns the session key
func (s *Session) ID() string {
	return s.id
}

// Append adds a turn, dropping the oldest turns beyond the limit
func (s *Session) Append(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, model.Turn{Role: role, Content: content})
	if over := len(s.turns) - s.limit; over > 0 {
		copy(s.turns, s.turns[over:])
		s.turns = s.turns[:s.limit]
	}
}

// Turns returns a copy of the history, oldest first
func (s *Session) Turns() []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of stored turns
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Reset empties the history
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActivity = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActivity)
}
