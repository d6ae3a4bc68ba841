package trigger

import (
	"context"
	"log/slog"
	"time"
)

// FailureHandler observes callbacks that returned an error or panicked.
// It runs synchronously on the dispatching goroutine after the failure is logged.
type FailureHandler func(ctx context.Context, err *CallbackError)

type options struct {
	logger                 *slog.Logger
	shutdownTimeout        time.Duration
	maxConcurrentSchedules int
	defaultPriority        Priority
	failureHandler         FailureHandler
}

// Option configures a Trigger.
type Option func(*options)

// WithLogger configures structured logging for trigger operations.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithShutdownTimeout configures maximum wait time for in-flight scheduled tasks during Close.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithMaxConcurrentSchedules limits how many scheduled dispatches may run at the same time.
// Set to 0 (default) for one unbounded goroutine per schedule.
// Waiting for a slot happens after the delay and before the final cancellation check,
// so a schedule canceled while waiting never fires.
//
// Example:
//
//	t := trigger.New[string](
//	    trigger.WithMaxConcurrentSchedules(32),
//	)
func WithMaxConcurrentSchedules(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxConcurrentSchedules = n
		}
	}
}

// WithDefaultPriority sets the priority used by Register when WithPriority is not given.
func WithDefaultPriority(p Priority) Option {
	return func(o *options) {
		if p.Valid() {
			o.defaultPriority = p
		}
	}
}

// WithFailureHandler sets a hook that observes failed callbacks.
// Failures never propagate to the caller of Trigger; this hook is the way to see them.
//
// Example:
//
//	t := trigger.New[Order](
//	    trigger.WithFailureHandler(func(ctx context.Context, err *trigger.CallbackError) {
//	        metrics.Inc("callback_failures", err.Event)
//	    }),
//	)
func WithFailureHandler(fn FailureHandler) Option {
	return func(o *options) {
		if fn != nil {
			o.failureHandler = fn
		}
	}
}

type registerOptions struct {
	priority Priority
}

// RegisterOption configures a single Register call.
type RegisterOption func(*registerOptions)

// WithPriority sets the priority class of the callback being registered.
func WithPriority(p Priority) RegisterOption {
	return func(o *registerOptions) {
		o.priority = p
	}
}
