// Package app wires configuration, logging, the pattern library and the
// HTTP API into a runnable service.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/fantasyname/internal/api"
	"github.com/dmitrymomot/fantasyname/pkg/environment"
	"github.com/dmitrymomot/fantasyname/pkg/httpserver"
	"github.com/dmitrymomot/fantasyname/pkg/logger"
	"github.com/dmitrymomot/fantasyname/pkg/namegen"
	"github.com/dmitrymomot/fantasyname/pkg/patternlib"
	"github.com/dmitrymomot/fantasyname/pkg/ratelimiter"
	"github.com/dmitrymomot/fantasyname/pkg/requestid"
)

// NewLogger builds the process logger from cfg. LOG_LEVEL and LOG_FORMAT
// override the environment defaults when set.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	env, err := environment.Parse(cfg.Env)
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if w != nil {
		opts = append(opts, logger.WithOutput(w))
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

// NewLibrary returns the built-in library extended with cfg.LibraryFile.
func NewLibrary(ctx context.Context, cfg Config, log *slog.Logger) (*patternlib.Library, error) {
	opts := []patternlib.Option{patternlib.WithLogger(log)}
	if cfg.CacheSize > 0 {
		opts = append(opts, patternlib.WithCacheSize(cfg.CacheSize))
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, patternlib.WithCompileOptions(namegen.WithMaxDepth(cfg.MaxDepth)))
	}
	lib := patternlib.New(opts...)

	if cfg.LibraryFile != "" {
		if _, err := lib.LoadFile(ctx, cfg.LibraryFile); err != nil {
			return nil, fmt.Errorf("load pattern library: %w", err)
		}
	}
	return lib, nil
}

// NewHandler builds the HTTP handler and registers every collector on reg.
// Background work started for the handler stops when ctx is done.
func NewHandler(ctx context.Context, cfg Config, log *slog.Logger, reg *prometheus.Registry) (http.Handler, error) {
	env, err := environment.Parse(cfg.Env)
	if err != nil {
		return nil, err
	}
	lib, err := NewLibrary(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if err := errors.Join(
		reg.Register(collectors.NewGoCollector()),
		reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})),
	); err != nil {
		return nil, fmt.Errorf("register collectors: %w", err)
	}
	metrics := api.NewMetrics(reg, lib)

	var limiter *ratelimiter.Bucket
	if cfg.RateLimit > 0 {
		store := ratelimiter.NewMemoryStore()
		context.AfterFunc(ctx, store.Close)
		if limiter, err = ratelimiter.NewBucket(store, ratelimiter.PerMinute(cfg.RateLimit, cfg.RateBurst)); err != nil {
			store.Close()
			return nil, err
		}
	}

	limits := api.Limits{MaxPatternLength: cfg.MaxPatternLength, MaxBatch: cfg.MaxBatch}
	return api.NewRouter(api.RouterConfig{
		Handler:     api.NewHandler(lib, limits, log, metrics),
		Metrics:     metrics,
		Logger:      log,
		Environment: env,
		RateLimiter: limiter,
		TrustProxy:  cfg.TrustProxy,
	}), nil
}

// Serve runs the HTTP API until ctx is cancelled.
func Serve(ctx context.Context, cfg Config, log *slog.Logger) error {
	handler, err := NewHandler(ctx, cfg, log, nil)
	if err != nil {
		return err
	}
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, handler)
}
