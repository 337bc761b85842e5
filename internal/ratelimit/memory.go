package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count  int
	start  time.Time
	length time.Duration
}

// MemoryLimiter is the process-local fallback. It is correctness-safe only
// within one process: an attacker spread across instances bypasses it, which
// is the documented cost of the degraded mode.
type MemoryLimiter struct {
	mu       sync.Mutex
	counters map[string]*window
	now      func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		counters: make(map[string]*window),
		now:      time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, windowLen time.Duration) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.counters[key]
	if !ok || now.Sub(w.start) >= windowLen {
		w = &window{start: now, length: windowLen}
		l.counters[key] = w
	}

	w.count++
	return w.count <= limit, nil
}

// Sweep drops counters whose window has elapsed. Without it the key space
// grows without bound under sustained distinct-client traffic.
func (l *MemoryLimiter) Sweep() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, w := range l.counters {
		if now.Sub(w.start) >= w.length {
			delete(l.counters, key)
		}
	}
}

// StartSweeping runs Sweep every interval until ctx is cancelled.
func (l *MemoryLimiter) StartSweeping(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Sweep()
			}
		}
	}()
}
