package trigger

import (
	"context"
	"time"

	"github.com/dmitrymomot/trigger/core/logger"
	"github.com/dmitrymomot/trigger/pkg/async"
)

// Schedule fires event with param after delay on a background goroutine and
// returns a token that can cancel it. The delay is a lower bound only.
//
// The task checks for cancellation before it starts waiting and again, atomically
// with the transition to Fired, after the delay. A schedule canceled at any point
// before that second check never fires.
//
// Example:
//
//	tok, err := t.Schedule("session.expired", sessionID, 15*time.Minute)
//	if err != nil {
//	    return err
//	}
//	// user came back
//	tok.Cancel()
func (t *Trigger[T]) Schedule(event string, param T, delay time.Duration) (*Token, error) {
	if event == "" {
		return nil, ErrEmptyEvent
	}
	if delay < 0 {
		return nil, ErrNegativeDelay
	}

	tok := newToken(t, event, delay)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil, ErrClosed
	}
	set, ok := t.pending[event]
	if !ok {
		set = make(map[*Token]struct{})
		t.pending[event] = set
	}
	set[tok] = struct{}{}
	t.wg.Add(1)
	t.mu.Unlock()

	t.logger.Debug("trigger scheduled",
		logger.Event(event),
		logger.TokenID(tok.id.String()),
		logger.Delay(delay))

	go t.runScheduled(tok, param)

	return tok, nil
}

func (t *Trigger[T]) runScheduled(tok *Token, param T) {
	defer t.wg.Done()
	defer close(tok.done)

	if tok.State() != StatePending {
		return
	}

	if tok.delay > 0 {
		timer := time.NewTimer(tok.delay)
		select {
		case <-timer.C:
		case <-tok.canceled:
			timer.Stop()
			return
		case <-t.ctx.Done():
			timer.Stop()
			t.cancelToken(tok)
			return
		}
	}

	if t.sem != nil {
		if err := t.sem.Acquire(t.ctx, 1); err != nil {
			t.cancelToken(tok)
			return
		}
		defer t.sem.Release(1)
	}

	if !tok.markFired() {
		return
	}

	// Leave the pending registry before dispatching so it only ever holds
	// schedules that are neither fired nor canceled.
	t.mu.Lock()
	t.removePendingLocked(tok)
	t.mu.Unlock()

	t.schedulesFired.Add(1)
	t.inFlight.Add(1)
	defer t.inFlight.Add(-1)

	n := t.Trigger(t.ctx, tok.event, param)
	tok.dispatched.Store(int64(n))

	t.logger.Debug("scheduled trigger fired",
		logger.Event(tok.event),
		logger.TokenID(tok.id.String()),
		logger.Count("succeeded", n))
}

// ScheduleAsync fires event with param on a background goroutine and returns a
// future resolving to the number of callbacks that succeeded. An unexpected
// failure in the background step is surfaced as the future's error.
//
// Example:
//
//	future, err := t.ScheduleAsync("report.ready", report)
//	if err != nil {
//	    return err
//	}
//	n, err := future.AwaitWithTimeout(time.Second)
func (t *Trigger[T]) ScheduleAsync(event string, param T) (*async.Future[int], error) {
	if event == "" {
		return nil, ErrEmptyEvent
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil, ErrClosed
	}
	t.wg.Add(1)
	t.mu.Unlock()

	// The future's own context is never canceled so the WaitGroup is always released;
	// callbacks receive the trigger lifetime context instead.
	return async.Async(context.Background(), param, func(_ context.Context, p T) (int, error) {
		defer t.wg.Done()

		t.inFlight.Add(1)
		defer t.inFlight.Add(-1)

		return t.Trigger(t.ctx, event, p), nil
	}), nil
}
