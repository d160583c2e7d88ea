// Package ratelimit throttles requests per client key over a fixed window.
// The in-memory limiter serves a single API instance; the Redis limiter shares
// counters across instances.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const cleanupInterval = 30 * time.Minute

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type window struct {
	count   int
	startAt time.Time
}

type MemoryLimiter struct {
	mu          sync.Mutex
	limit       int
	period      time.Duration
	clients     map[string]*window
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewMemoryLimiter(limit int, period time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		limit:       limit,
		period:      period,
		clients:     make(map[string]*window),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

func (l *MemoryLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stopCleanup:
			return
		}
	}
}

func (l *MemoryLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, w := range l.clients {
		if now.Sub(w.startAt) >= l.period {
			delete(l.clients, key)
		}
	}
}

func (l *MemoryLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCleanup) })
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.clients[key]
	if !ok || now.Sub(w.startAt) >= l.period {
		l.clients[key] = &window{count: 1, startAt: now}
		return l.limit > 0, nil
	}

	if w.count >= l.limit {
		return false, nil
	}
	w.count++
	return true, nil
}
