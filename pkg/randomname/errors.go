package randomname

import "errors"

var (
	// ErrExhausted is returned when MaxAttempts candidates were rejected.
	ErrExhausted = errors.New("randomname: no acceptable name within attempt limit")

	// ErrInvalidCount is returned by Batch for negative counts.
	ErrInvalidCount = errors.New("randomname: invalid count")
)
