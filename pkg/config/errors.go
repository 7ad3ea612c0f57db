package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")

	// ErrReadingEnvFile is returned when a .env file exists but cannot be read.
	ErrReadingEnvFile = errors.New("config: failed to read env file")

	// ErrParsingConfig is returned when variables cannot be parsed into the struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")
)
