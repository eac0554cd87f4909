package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTimezone indicates an unresolvable timezone setting.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrWatcherClosed indicates the directory watcher has been closed.
	ErrWatcherClosed = errors.New("watcher closed")
)
