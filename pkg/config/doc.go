// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with github.com/caarlos0/env/v11 tags; optional
// .env files are read with github.com/joho/godotenv. Values already present
// in the environment take precedence over file values, and file values over
// envDefault tags.
//
//	type Config struct {
//		Env       string `env:"APP_ENV" envDefault:"development"`
//		CacheSize int    `env:"NAMEGEN_CACHE_SIZE" envDefault:"128"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithEnvFiles(".env.local", ".env"))
//
// Errors match ErrReadingEnvFile or ErrParsingConfig with errors.Is and keep
// the underlying cause in the chain.
package config
