package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fantasyname/pkg/clientip"
	"github.com/dmitrymomot/fantasyname/pkg/environment"
	"github.com/dmitrymomot/fantasyname/pkg/httpserver"
	"github.com/dmitrymomot/fantasyname/pkg/logger"
	"github.com/dmitrymomot/fantasyname/pkg/ratelimiter"
	"github.com/dmitrymomot/fantasyname/pkg/requestid"
)

// RouterConfig collects the router dependencies.
type RouterConfig struct {
	Handler     *Handler
	Metrics     *Metrics
	Logger      *slog.Logger
	Environment environment.Environment

	// RateLimiter limits /v1 requests per client address when set.
	RateLimiter *ratelimiter.Bucket
	// TrustProxy honors forwarding headers when resolving client addresses.
	TrustProxy bool
}

// NewRouter mounts the API, health and metrics endpoints.
func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	env := cfg.Environment
	if env == "" {
		env = environment.Development
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = cfg.Handler.metrics
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(cfg.TrustProxy))
	r.Use(environment.Middleware(env))
	r.Use(requestLogger(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, log, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, log, ErrMethodNotAllowed)
	})

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	h := cfg.Handler
	r.Route("/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(ratelimiter.Middleware(cfg.RateLimiter, ratelimiter.ByClientIP,
				ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request) {
					respondError(w, r, log, ErrTooManyRequests)
				}),
				ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
					respondError(w, r, log, err)
				}),
			))
		}
		r.Get("/presets", h.listPresets)
		r.Get("/presets/{name}", h.getPreset)
		r.Get("/presets/{name}/names", h.presetNames)
		r.Post("/compile", h.compile)
		r.Post("/generate", h.generateNames)
	})
	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.Log(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("client_ip", clientip.FromContext(r.Context())),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
