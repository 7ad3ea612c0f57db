package app

import (
	"github.com/dmitrymomot/fantasyname/pkg/config"
	"github.com/dmitrymomot/fantasyname/pkg/httpserver"
)

// Config is the process configuration, read from the environment and
// optional .env files.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"namegen"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP httpserver.Config

	LibraryFile      string `env:"NAMEGEN_LIBRARY_FILE"`
	CacheSize        int    `env:"NAMEGEN_CACHE_SIZE" envDefault:"128"`
	MaxPatternLength int    `env:"NAMEGEN_MAX_PATTERN_LENGTH" envDefault:"1024"`
	MaxDepth         int    `env:"NAMEGEN_MAX_DEPTH" envDefault:"64"`
	MaxBatch         int    `env:"NAMEGEN_MAX_BATCH" envDefault:"100"`

	// RateLimit is requests per minute per client address; 0 disables it.
	RateLimit  int  `env:"NAMEGEN_RATE_LIMIT" envDefault:"600"`
	RateBurst  int  `env:"NAMEGEN_RATE_BURST" envDefault:"60"`
	TrustProxy bool `env:"HTTP_TRUST_PROXY" envDefault:"false"`
}

// LoadConfig reads Config. See config.Load for the precedence rules.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
