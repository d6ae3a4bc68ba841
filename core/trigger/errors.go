package trigger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUsage is the parent of every error returned for invalid arguments.
	// Such errors are returned before any state is changed.
	ErrInvalidUsage = errors.New("trigger: invalid usage")

	// ErrEmptyEvent is returned when an event name is empty.
	ErrEmptyEvent = fmt.Errorf("%w: event name cannot be empty", ErrInvalidUsage)

	// ErrNilCallback is returned when registering a nil callback.
	ErrNilCallback = fmt.Errorf("%w: callback cannot be nil", ErrInvalidUsage)

	// ErrNegativeDelay is returned when scheduling with a negative delay.
	ErrNegativeDelay = fmt.Errorf("%w: delay cannot be negative", ErrInvalidUsage)

	// ErrInvalidPriority is returned for a priority outside High, Normal and Low.
	ErrInvalidPriority = fmt.Errorf("%w: unknown priority", ErrInvalidUsage)

	// ErrClosed is returned when using a trigger after Close.
	ErrClosed = errors.New("trigger: closed")

	// ErrShutdownTimeout is returned by Close when background tasks outlive the shutdown timeout.
	ErrShutdownTimeout = errors.New("trigger: shutdown timeout exceeded")

	// ErrCallbackPanicked wraps a panic recovered from a callback.
	ErrCallbackPanicked = errors.New("trigger: callback panicked")

	// ErrHealthcheckFailed is returned when the trigger is not operational.
	ErrHealthcheckFailed = errors.New("trigger: healthcheck failed")

	// ErrQueueFull is returned when enqueueing into a full queue.
	ErrQueueFull = errors.New("trigger: queue is full")

	// ErrQueueClosed is returned when using a queue after Close.
	ErrQueueClosed = errors.New("trigger: queue is closed")
)

// CallbackError describes a callback that failed during dispatch.
type CallbackError struct {
	Event    string
	ID       CallbackID
	Priority Priority
	Err      error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("trigger: callback %d for event %q failed: %v", e.ID, e.Event, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

// Panicked reports whether the callback panicked rather than returning an error.
func (e *CallbackError) Panicked() bool {
	return errors.Is(e.Err, ErrCallbackPanicked)
}
