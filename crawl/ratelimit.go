package crawl

import (
	"context"
	"time"

	"github.com/jswierad/guidecrawl"
	"golang.org/x/time/rate"
)

var _ guidecrawl.Limiter = (*Limiter)(nil)

// Limiter enforces the crawl's aggregate request rate using a token bucket.
// A single Limiter is shared by every worker: the interval is a promise to
// the target site, not a per-goroutine delay, so it must be enforced
// globally. Burst is 1 (no bursting allowed).
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter creates a Limiter that allows one request per interval.
func NewLimiter(interval time.Duration) *Limiter {
	return &Limiter{
		l: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the rate limit allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.l.Wait(ctx)
}
