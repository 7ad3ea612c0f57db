package patternlib

import (
	"log/slog"

	"github.com/dmitrymomot/fantasyname/pkg/namegen"
)

const defaultCacheSize = 128

// Option configures a Library.
type Option func(*options)

type options struct {
	builtins    bool
	cacheSize   int
	compileOpts []namegen.Option
	logger      *slog.Logger
}

// WithoutBuiltins starts the library empty instead of seeded with the
// namegen presets.
func WithoutBuiltins() Option {
	return func(o *options) { o.builtins = false }
}

// WithCacheSize sets how many compiled trees are kept. Values below one are
// ignored.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// WithCompileOptions passes opts to every namegen.Compile call.
func WithCompileOptions(opts ...namegen.Option) Option {
	return func(o *options) { o.compileOpts = append(o.compileOpts, opts...) }
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
