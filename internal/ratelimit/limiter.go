// Package ratelimit provides fixed-window counters keyed by
// "<action>:<client-identifier>". The shared Redis backend is authoritative
// across instances; the in-memory limiter is a per-process fallback.
package ratelimit

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../mocks/mock_limiter.go -package=mocks github.com/avolkov/webauth/internal/ratelimit Limiter

// Limiter atomically increments the counter for key and reports whether the
// post-increment count is still within limit. When the window since the first
// attempt has elapsed, the counter resets to 1 and the window restarts.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// Key composes an action and a client identifier into a counter key, so
// different actions have independent budgets for the same client.
func Key(action, client string) string {
	return action + ":" + client
}
