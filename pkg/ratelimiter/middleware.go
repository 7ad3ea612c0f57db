package ratelimiter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/fantasyname/pkg/clientip"
)

// KeyFunc extracts the bucket key from a request. An empty key skips
// limiting for that request.
type KeyFunc func(r *http.Request) string

// CostFunc returns how many tokens a request costs.
type CostFunc func(r *http.Request) int

// ByClientIP keys requests by the address stored by clientip.Middleware,
// falling back to the connection address.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.RemoteIP(r)
}

type middlewareConfig struct {
	cost    CostFunc
	limited http.HandlerFunc
	failed  func(http.ResponseWriter, *http.Request, error)
	now     func() time.Time
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithCost charges each request cost(r) tokens instead of one.
func WithCost(cost CostFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.cost = cost
	}
}

// WithLimitedHandler replies to denied requests. The status must be set by h;
// rate limit headers are already present.
func WithLimitedHandler(h http.HandlerFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.limited = h
	}
}

// WithErrorHandler replies when the store fails.
func WithErrorHandler(h func(http.ResponseWriter, *http.Request, error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.failed = h
	}
}

// Middleware limits requests with b and sets the X-RateLimit-* headers.
func Middleware(b *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		cost: func(*http.Request) int { return 1 },
		limited: func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		failed: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.AllowN(r.Context(), k, max(cfg.cost(r), 1))
			if err != nil {
				cfg.failed(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				secs := int(res.RetryAfter(cfg.now()).Round(time.Second) / time.Second)
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				cfg.limited(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
