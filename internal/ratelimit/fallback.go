package ratelimit

import (
	"context"
	"time"

	"github.com/avolkov/webauth/internal/logging"
)

// FallbackLimiter consults the shared backend first and degrades to the
// process-local limiter when it is unreachable. The degradation is logged,
// never silent, and backend failures are not surfaced to the request path.
type FallbackLimiter struct {
	shared Limiter
	local  Limiter
	log    logging.Logger
}

func NewFallbackLimiter(shared, local Limiter, log logging.Logger) *FallbackLimiter {
	return &FallbackLimiter{shared: shared, local: local, log: log}
}

func (l *FallbackLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if l.shared != nil {
		ok, err := l.shared.Allow(ctx, key, limit, window)
		if err == nil {
			return ok, nil
		}
		l.log.Warn(ctx, "shared rate-limit backend unreachable, degrading to process-local counters", "key", key, "error", err)
	}
	return l.local.Allow(ctx, key, limit, window)
}
