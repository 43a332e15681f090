package ai

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"evalreport/backend/internal/logger"
	"evalreport/backend/internal/metrics"
)

// DefaultRateLimit is the default number of model calls per second.
const DefaultRateLimit = 5

// throttleLogThreshold is the wait above which a throttled call is logged.
const throttleLogThreshold = 100 * time.Millisecond

// RateLimiter is the single token bucket shared by report generation and
// translation. Callers wait for a token; nothing is retried.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing qps calls per second with a
// burst of the same size.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), qps)}
}

// Wait blocks until a token for a purpose ("generate", "translate") is
// available or ctx is done. Time spent waiting is exported per purpose.
func (r *RateLimiter) Wait(ctx context.Context, purpose string) error {
	start := time.Now()
	err := r.limiter.Wait(ctx)
	waited := time.Since(start)

	metrics.RateLimitWait.WithLabelValues(purpose).Observe(waited.Seconds())
	if err == nil && waited > throttleLogThreshold {
		logger.Debug("model call throttled", "module", "ai", "action", "wait", "resource", "ratelimit", "result", "ok", "purpose", purpose, "waited_ms", waited.Milliseconds())
	}
	return err
}

// Limit returns the configured calls per second.
func (r *RateLimiter) Limit() int {
	return int(r.limiter.Limit())
}
