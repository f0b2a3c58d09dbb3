package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/metrics"
)

// DefaultID is used when a caller does not name a session
const DefaultID = "default"

// DefaultTTL is how long an idle session is kept
const DefaultTTL = 30 * time.Minute

// Manager owns all live sessions
type Manager struct {
	sessions map[string]*Session
	limit    int
	ttl      time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

// NewManager creates a manager keeping limit turns per session and expiring
// sessions idle for longer than ttl.
func NewManager(limit int, ttl time.Duration) *Manager {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: make(map[string]*Session),
		limit:    limit,
		ttl:      ttl,
		now:      time.Now,
	}
}

// NewID issues a fresh session id
func NewID() string {
	return uuid.NewString()
}

// Normalize maps a blank id to DefaultID
func Normalize(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return DefaultID
	}
	return id
}

// Get returns the session for id if it exists
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[Normalize(id)]
	return s, ok
}

// GetOrCreate returns the session for id, creating it when absent. An expired
// session is replaced by an empty one.
func (m *Manager) GetOrCreate(id string) *Session {
	id = Normalize(id)
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok && s.idleSince(now) <= m.ttl {
		s.touch(now)
		return s
	}

	s := newSession(id, m.limit, now)
	m.sessions[id] = s
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	return s
}

// Reset empties the history of id. It reports whether the session existed.
func (m *Manager) Reset(id string) bool {
	s, ok := m.Get(id)
	if !ok {
		return false
	}
	s.Reset()
	return true
}

// End removes the session for id
func (m *Manager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, Normalize(id))
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
}

// CleanupExpired removes sessions idle for longer than the TTL
func (m *Manager) CleanupExpired() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.idleSince(now) > m.ttl {
			delete(m.sessions, id)
			removed++
		}
	}
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	return removed
}

// Stats returns current session statistics
func (m *Manager) Stats() map[string]int {
	now := m.now()

	m.mu.RLock()
	defer m.mu.RUnlock()

	active := 0
	for _, s := range m.sessions {
		if s.idleSince(now) <= m.ttl {
			active++
		}
	}
	return map[string]int{
		"total":  len(m.sessions),
		"active": active,
	}
}
