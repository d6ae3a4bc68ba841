package trigger

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/trigger/core/logger"
)

// Decorator wraps a callback to add cross-cutting functionality.
// It follows the same pattern as HTTP middleware.
//
// Example:
//
//	func Timeout[T any](d time.Duration) trigger.Decorator[T] {
//	    return func(next trigger.Callback[T]) trigger.Callback[T] {
//	        return func(ctx context.Context, param T) error {
//	            ctx, cancel := context.WithTimeout(ctx, d)
//	            defer cancel()
//	            return next(ctx, param)
//	        }
//	    }
//	}
type Decorator[T any] func(Callback[T]) Callback[T]

// ApplyDecorators applies a series of decorators to a callback.
// The first decorator in the list becomes the outermost wrapper (executes first).
//
// Example:
//
//	cb := trigger.ApplyDecorators(
//	    myCallback,
//	    trigger.LoggingDecorator[Order](logger, "order.paid"),
//	    Timeout[Order](time.Second),
//	)
//
// Execution order: Logging -> Timeout -> myCallback
func ApplyDecorators[T any](cb Callback[T], decorators ...Decorator[T]) Callback[T] {
	for i := len(decorators) - 1; i >= 0; i-- {
		cb = decorators[i](cb)
	}
	return cb
}

// LoggingDecorator logs callback execution with timing.
func LoggingDecorator[T any](log *slog.Logger, event string) Decorator[T] {
	return func(next Callback[T]) Callback[T] {
		return func(ctx context.Context, param T) error {
			start := time.Now()
			log.DebugContext(ctx, "callback started", logger.Event(event))

			err := next(ctx, param)
			if err != nil {
				log.ErrorContext(ctx, "callback failed",
					logger.Event(event),
					logger.Duration(time.Since(start)),
					logger.Error(err))
				return err
			}

			log.DebugContext(ctx, "callback completed",
				logger.Event(event),
				logger.Duration(time.Since(start)))
			return nil
		}
	}
}

// RecoverDecorator converts a panic in the wrapped callback into an error wrapping
// ErrCallbackPanicked. Trigger already recovers panics; this is useful when a
// callback is also invoked directly.
func RecoverDecorator[T any]() Decorator[T] {
	return func(next Callback[T]) Callback[T] {
		return func(ctx context.Context, param T) error {
			return invoke(ctx, next, param)
		}
	}
}
