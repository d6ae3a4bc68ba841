package async

import "errors"

var (
	// ErrTimeout is returned when AwaitWithTimeout exceeds its duration.
	ErrTimeout = errors.New("async: timeout waiting for result")

	// ErrNoFutures is returned when WaitAny is called without futures.
	ErrNoFutures = errors.New("async: no futures provided")

	// ErrPanicked wraps a panic recovered from the asynchronous function.
	ErrPanicked = errors.New("async: function panicked")
)
