package trigger

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrymomot/trigger/core/logger"
)

// Trigger invokes every callback registered for event with param and returns
// how many completed without failing.
//
// Callbacks run sequentially on the calling goroutine: High before Normal before
// Low, and in registration order within a priority. The callback list is a
// snapshot taken when the call starts; callbacks registered or removed during
// dispatch do not affect it. A failing callback is logged, reported to the
// failure handler and skipped; it never stops the others and never reaches
// the caller.
func (t *Trigger[T]) Trigger(ctx context.Context, event string, param T) int {
	if event == "" {
		return 0
	}

	t.mu.RLock()
	snapshot := slices.Clone(t.callbacks[event])
	t.mu.RUnlock()

	if len(snapshot) == 0 {
		return 0
	}

	slices.SortStableFunc(snapshot, func(a, b entry[T]) int {
		return cmp.Compare(a.priority, b.priority)
	})

	t.dispatches.Add(1)
	start := time.Now()

	succeeded := 0
	for _, e := range snapshot {
		if err := invoke(ctx, e.callback, param); err != nil {
			t.callbacksFailed.Add(1)
			t.reportFailure(ctx, &CallbackError{
				Event:    event,
				ID:       e.id,
				Priority: e.priority,
				Err:      err,
			})
			continue
		}
		t.callbacksSucceeded.Add(1)
		succeeded++
	}

	t.logger.DebugContext(ctx, "event dispatched",
		logger.Event(event),
		logger.Count("callbacks", len(snapshot)),
		logger.Count("succeeded", succeeded),
		logger.Duration(time.Since(start)))

	return succeeded
}

// invoke runs one callback inside its own recover boundary.
func invoke[T any](ctx context.Context, cb Callback[T], param T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanicked, r)
		}
	}()
	return cb(ctx, param)
}

func (t *Trigger[T]) reportFailure(ctx context.Context, cbErr *CallbackError) {
	t.logger.ErrorContext(ctx, "callback failed",
		logger.Event(cbErr.Event),
		logger.CallbackID(uint64(cbErr.ID)),
		logger.Priority(cbErr.Priority.String()),
		logger.Error(cbErr.Err))

	if t.failureHandler == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			t.logger.ErrorContext(ctx, "failure handler panicked",
				logger.Event(cbErr.Event),
				logger.Panic(r))
		}
	}()
	t.failureHandler(ctx, cbErr)
}
