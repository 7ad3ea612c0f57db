package patternlib

import "errors"

var (
	ErrInvalidName    = errors.New("patternlib: invalid pattern name")
	ErrUnknownPattern = errors.New("patternlib: unknown pattern")
	ErrInvalidLibrary = errors.New("patternlib: invalid library file")
)
