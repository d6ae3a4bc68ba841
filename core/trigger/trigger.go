package trigger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/dmitrymomot/trigger/core/logger"
	"github.com/dmitrymomot/trigger/pkg/async"
)

// Trigger dispatches prioritized callbacks registered against string-keyed events.
// Callbacks can be fired synchronously, after a delay, or asynchronously.
//
// One RWMutex guards both the callback registry and the registry of pending
// schedules. Callbacks never run while the lock is held.
type Trigger[T any] struct {
	mu        sync.RWMutex
	callbacks map[string][]entry[T]
	pending   map[string]map[*Token]struct{}
	closed    bool

	nextID atomic.Uint64

	logger          *slog.Logger
	shutdownTimeout time.Duration
	defaultPriority Priority
	failureHandler  FailureHandler
	sem             *semaphore.Weighted

	// ctx lives as long as the trigger; Close cancels it
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	dispatches         atomic.Int64
	callbacksSucceeded atomic.Int64
	callbacksFailed    atomic.Int64
	schedulesFired     atomic.Int64
	schedulesCanceled  atomic.Int64
	inFlight           atomic.Int32
}

// Stats provides observability metrics for monitoring and debugging.
type Stats struct {
	Events             int
	Callbacks          int
	PendingSchedules   int
	InFlight           int32
	Dispatches         int64
	CallbacksSucceeded int64
	CallbacksFailed    int64
	SchedulesFired     int64
	SchedulesCanceled  int64
	IsClosed           bool
}

// New creates a trigger with the given options.
//
// Example:
//
//	t := trigger.New[int](
//	    trigger.WithLogger(logger),
//	    trigger.WithShutdownTimeout(5*time.Second),
//	)
//	defer t.Close()
func New[T any](opts ...Option) *Trigger[T] {
	o := &options{
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdownTimeout: 30 * time.Second,
		defaultPriority: PriorityDefault,
	}
	for _, opt := range opts {
		opt(o)
	}

	t := &Trigger[T]{
		callbacks:       make(map[string][]entry[T]),
		pending:         make(map[string]map[*Token]struct{}),
		logger:          o.logger.With(logger.Component("trigger")),
		shutdownTimeout: o.shutdownTimeout,
		defaultPriority: o.defaultPriority,
		failureHandler:  o.failureHandler,
	}
	if o.maxConcurrentSchedules > 0 {
		t.sem = semaphore.NewWeighted(int64(o.maxConcurrentSchedules))
	}
	t.ctx, t.cancel = context.WithCancel(context.Background())

	return t
}

// Close cancels every pending schedule, rejects new schedules and waits for
// in-flight background tasks up to the shutdown timeout. The callback registry
// is cleared afterwards. A second call returns ErrClosed.
func (t *Trigger[T]) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrClosed
	}
	t.closed = true
	canceled := t.cancelAllLocked()
	t.mu.Unlock()

	t.cancel()

	t.logger.Info("trigger closing, waiting for background tasks to complete",
		logger.Count("canceled", canceled),
		logger.Timeout(t.shutdownTimeout))

	drained := async.Exec(context.Background(), &t.wg, func(_ context.Context, wg *sync.WaitGroup) error {
		wg.Wait()
		return nil
	})

	var err error
	if werr := drained.AwaitWithTimeout(t.shutdownTimeout); errors.Is(werr, async.ErrTimeout) {
		t.logger.Warn("trigger shutdown timeout exceeded - some background tasks may be abandoned",
			logger.Timeout(t.shutdownTimeout))
		err = ErrShutdownTimeout
	} else {
		t.logger.Info("trigger closed cleanly")
	}

	t.mu.Lock()
	clear(t.callbacks)
	t.mu.Unlock()

	return err
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// The returned function blocks until ctx is done, then closes the trigger.
func (t *Trigger[T]) Run(ctx context.Context) func() error {
	return func() error {
		<-ctx.Done()
		if err := t.Close(); err != nil && !errors.Is(err, ErrClosed) {
			return err
		}
		return nil
	}
}

// Stats returns current trigger statistics.
func (t *Trigger[T]) Stats() Stats {
	t.mu.RLock()
	events := len(t.callbacks)
	callbacks := 0
	for _, entries := range t.callbacks {
		callbacks += len(entries)
	}
	pending := 0
	for _, set := range t.pending {
		pending += len(set)
	}
	closed := t.closed
	t.mu.RUnlock()

	return Stats{
		Events:             events,
		Callbacks:          callbacks,
		PendingSchedules:   pending,
		InFlight:           t.inFlight.Load(),
		Dispatches:         t.dispatches.Load(),
		CallbacksSucceeded: t.callbacksSucceeded.Load(),
		CallbacksFailed:    t.callbacksFailed.Load(),
		SchedulesFired:     t.schedulesFired.Load(),
		SchedulesCanceled:  t.schedulesCanceled.Load(),
		IsClosed:           closed,
	}
}

// Healthcheck validates that the trigger is operational.
// Returns nil if healthy, or an error describing the health issue.
func (t *Trigger[T]) Healthcheck(ctx context.Context) error {
	if t.Stats().IsClosed {
		return errors.Join(ErrHealthcheckFailed, ErrClosed)
	}
	return nil
}
