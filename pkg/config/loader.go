package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	files   []string
	prefix  string
	environ map[string]string
}

// WithEnvFiles reads the given .env files. Missing files are skipped; earlier
// files win over later ones and the process environment wins over all of
// them. Without this option Load reads ".env" from the working directory.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = paths
	}
}

// WithPrefix requires every variable name to carry prefix, e.g. "NAMEGEN_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnviron replaces the process environment as the base set of variables.
// Tests use it to stay independent of the host.
func WithEnviron(vars map[string]string) Option {
	return func(o *options) {
		o.environ = vars
	}
}

// Load fills v from environment variables according to its `env` struct
// tags. Loading never modifies the process environment.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{files: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	vars := o.environ
	if vars == nil {
		vars = environ()
	} else {
		vars = copyMap(vars)
	}

	for _, path := range o.files {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, val := range fileVars {
			if _, set := vars[k]; !set {
				vars[k] = val
			}
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Environment: vars, Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(err)
	}
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, val, ok := strings.Cut(kv, "="); ok {
			vars[k] = val
		}
	}
	return vars
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
