package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultCleanupInterval is how often expired sessions are swept
const DefaultCleanupInterval = time.Minute

// CleanupService periodically removes expired sessions
type CleanupService struct {
	manager  *Manager
	interval time.Duration
	logger   *zap.Logger
	cancel   context.CancelFunc
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewCleanupService creates a sweeper for manager
func NewCleanupService(manager *Manager, interval time.Duration, logger *zap.Logger) *CleanupService {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &CleanupService{
		manager:  manager,
		interval: interval,
		logger:   logger.With(zap.String("component", "session.cleanup")),
	}
}

// Start begins the periodic sweep. Calling Start twice is a no-op.
func (c *CleanupService) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return
	}

	cleanupCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	c.running = true

	go c.run(cleanupCtx, c.done)
}

// Stop cancels the sweep and waits for it to exit
func (c *CleanupService) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	cancel()
	<-done
}

// IsRunning reports whether the sweep goroutine is active
func (c *CleanupService) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *CleanupService) run(ctx context.Context, done chan struct{}) {
	defer func() {
		c.mu.Lock()
		c.running = false
		close(done)
		c.mu.Unlock()
	}()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("cleanup service stopping")
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *CleanupService) sweep() {
	started := time.Now()
	removed := c.manager.CleanupExpired()
	if removed > 0 {
		c.logger.Info("cleaned up expired sessions",
			zap.Int("removed", removed),
			zap.Duration("duration", time.Since(started)))
	}

	stats := c.manager.Stats()
	c.logger.Debug("session stats",
		zap.Int("total", stats["total"]),
		zap.Int("active", stats["active"]))
}
