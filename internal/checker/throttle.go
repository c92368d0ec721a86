package checker

import (
	"context"
	"domainchecker/pkg/metrics"
	"domainchecker/pkg/whois"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ThrottleOptions configure the adaptive WHOIS request rate.
type ThrottleOptions struct {
	// MinInterval is the shortest spacing between two lookups, i.e. the
	// fastest rate the throttle recovers to. Zero disables throttling.
	MinInterval time.Duration
	// MaxInterval is the longest spacing the throttle backs off to.
	MaxInterval time.Duration
	// RecoverySteps is how many successful lookups it takes to climb from
	// the slowest rate back to the fastest.
	RecoverySteps int
}

// Throttle spaces outbound WHOIS lookups. The allowed rate is halved every time
// a server reports rate limiting, followed by a cooldown of one interval, and
// grows back additively with every successful lookup. A single Throttle is
// shared by all batches of the process.
type Throttle struct {
	limiter *rate.Limiter

	mu            sync.Mutex
	maxRate       rate.Limit
	minRate       rate.Limit
	step          rate.Limit
	cooldownUntil time.Time
	now           func() time.Time
}

// NewThrottle builds a Throttle. With MinInterval <= 0 the throttle never waits.
func NewThrottle(opts ThrottleOptions) *Throttle {
	t := &Throttle{now: time.Now}
	if opts.MinInterval <= 0 {
		t.limiter = rate.NewLimiter(rate.Inf, 1)
		t.maxRate = rate.Inf

		return t
	}

	if opts.MaxInterval < opts.MinInterval {
		opts.MaxInterval = opts.MinInterval
	}
	if opts.RecoverySteps <= 0 {
		opts.RecoverySteps = 10
	}

	t.maxRate = rate.Every(opts.MinInterval)
	t.minRate = rate.Every(opts.MaxInterval)
	t.step = (t.maxRate - t.minRate) / rate.Limit(opts.RecoverySteps)
	t.limiter = rate.NewLimiter(t.maxRate, 1)
	metrics.ThrottleLimit.Set(float64(t.maxRate))

	return t
}

// Wait blocks until the next lookup may start or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	if t.maxRate == rate.Inf {
		return nil
	}

	t.mu.Lock()
	cooldown := t.cooldownUntil.Sub(t.now())
	t.mu.Unlock()

	if cooldown > 0 {
		timer := time.NewTimer(cooldown)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for throttle cooldown: %w", ctx.Err())
		case <-timer.C:
		}
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for throttle: %w", err)
	}

	return nil
}

// Observe feeds the outcome of a lookup back into the throttle.
func (t *Throttle) Observe(lookupErr error) {
	if t.maxRate == rate.Inf {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	current := t.limiter.Limit()
	if kind, ok := whois.FailureOf(lookupErr); ok && kind == whois.FailureRateLimited {
		next := max(current/2, t.minRate)
		t.limiter.SetLimit(next)
		t.cooldownUntil = t.now().Add(time.Duration(float64(time.Second) / float64(next)))
		metrics.ThrottleLimit.Set(float64(next))

		return
	}

	if current < t.maxRate {
		next := min(current+t.step, t.maxRate)
		t.limiter.SetLimit(next)
		metrics.ThrottleLimit.Set(float64(next))
	}
}

// Limit returns the current rate in lookups per second.
func (t *Throttle) Limit() rate.Limit {
	return t.limiter.Limit()
}
