package request

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// retryableStatuses are the HTTP statuses the upstream documents as
// transient: rate limiting and gateway-side failures.
var retryableStatuses = map[int]bool{
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

// RetryConfig configures the executor's retry policy.
//
// The defaults reproduce the upstream client contract: three attempts
// total with backoff delays of 300ms then 600ms between them.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Default: 3.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	// Default: 300ms.
	InitialDelay time.Duration

	// Multiplier grows the delay between consecutive retries.
	// Default: 2.0.
	Multiplier float64

	// MaxDelay caps the delay between retries.
	// Default: 30s.
	MaxDelay time.Duration

	// Jitter adds up to 25% randomness to each delay. Off by default so
	// the schedule stays deterministic.
	Jitter bool

	// OnRetry is called before each retry sleep.
	OnRetry func(attempt int, err error, delay time.Duration)
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = 300 * time.Millisecond
	}
	if c.Multiplier <= 0 {
		c.Multiplier = 2.0
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = 30 * time.Second
	}
	return c
}

// delay returns the backoff before the retry following the given
// 1-based attempt: InitialDelay * Multiplier^(attempt-1), capped.
func (c RetryConfig) delay(attempt int) time.Duration {
	d := time.Duration(float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt-1)))
	if d > c.MaxDelay {
		d = c.MaxDelay
	}
	if c.Jitter && d > 0 {
		// #nosec G404 -- jitter is non-cryptographic timing variance.
		d += time.Duration(rand.Int63n(int64(d / 4)))
	}
	return d
}

type retrier struct {
	cfg RetryConfig
}

func newRetrier(cfg RetryConfig) *retrier {
	return &retrier{cfg: cfg.withDefaults()}
}

// run executes op until it succeeds, fails non-retryably, exhausts
// MaxAttempts, or the context ends. Only *Error values reporting
// Retryable() are retried; any other error returns immediately.
func (r *retrier) run(ctx context.Context, op func(context.Context) error) error {
	for attempt := 1; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}

		var re *Error
		if !errors.As(err, &re) || !re.Retryable() {
			return err
		}
		if attempt >= r.cfg.MaxAttempts {
			return err
		}

		d := r.cfg.delay(attempt)
		if r.cfg.OnRetry != nil {
			r.cfg.OnRetry(attempt, err, d)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
}
