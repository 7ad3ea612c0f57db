package ratelimiter

import (
	"fmt"
	"time"
)

// Config defines a token bucket.
type Config struct {
	Capacity       int           // burst size
	RefillRate     int           // tokens added per interval
	RefillInterval time.Duration // refill period
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// PerMinute returns a Config allowing n requests per minute with a burst of
// burst. A non-positive burst defaults to n.
func PerMinute(n, burst int) Config {
	if burst <= 0 {
		burst = n
	}
	cfg := Config{Capacity: burst, RefillRate: 1}
	if n > 0 {
		cfg.RefillInterval = time.Minute / time.Duration(n)
	}
	return cfg
}

// Result is the outcome of one check.
type Result struct {
	Limit     int
	Remaining int // negative when the request was denied
	ResetAt   time.Time
}

// Allowed reports whether the tokens were granted.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before retrying, measured from now,
// or 0 when the request was allowed.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}
