// Package trigger provides an in-process, named-event callback dispatcher.
//
// Callers register prioritized callbacks against string-keyed events, fire them
// synchronously, schedule them for delayed or asynchronous firing, and cancel
// outstanding schedules.
//
// # Core Components
//
//   - Trigger[T]: registry of callbacks plus the registry of pending schedules,
//     guarded by one RWMutex
//   - Callback[T]: func(ctx, T) error; an error or a panic marks it as failed
//   - Priority: High, Normal (default) and Low
//   - Token: cancellation handle of one scheduled trigger
//   - Queue[T]: bounded buffer of trigger requests for batch dispatch
//
// # Basic Usage
//
//	t := trigger.New[int](trigger.WithLogger(logger))
//	defer t.Close()
//
//	id, err := t.Register("temperature", func(ctx context.Context, v int) error {
//	    return alert(ctx, v)
//	}, trigger.WithPriority(trigger.PriorityHigh))
//
//	n := t.Trigger(ctx, "temperature", 42) // callbacks that succeeded
//
//	t.Unregister("temperature", id)
//
// # Ordering
//
// Within one Trigger call, High callbacks complete before any Normal callback
// starts, and Normal before Low. Callbacks of equal priority run in registration
// order. Nothing is guaranteed between separate dispatches of the same event
// from different goroutines; each uses its own snapshot of the registry.
//
// # Scheduling
//
// Schedule starts one goroutine per call that waits for the delay and then fires
// the event, unless the returned Token (or Cancel / CancelAll for the event) was
// canceled first. Each schedule is Pending until it becomes either Fired or
// Canceled; the transition is a single atomic compare-and-swap, so a schedule
// is never both.
//
//	tok, _ := t.Schedule("reminder", 1, 500*time.Millisecond)
//	tok.Cancel()     // true: it will not fire
//	<-tok.Done()     // background task has exited
//
// ScheduleAsync fires immediately on a background goroutine and returns an
// async.Future resolving to the success count:
//
//	f, _ := t.ScheduleAsync("reminder", 1)
//	n, err := f.Await()
//
// WithMaxConcurrentSchedules bounds how many scheduled dispatches run at once.
//
// # Failure Handling
//
// Register, Schedule and ScheduleAsync validate arguments and return errors that
// match ErrInvalidUsage before changing any state. Trigger, Cancel, CancelAll,
// HasCallbacks and CallbackCount never fail. Callback failures are logged and
// passed to the optional FailureHandler as *CallbackError:
//
//	t := trigger.New[int](
//	    trigger.WithFailureHandler(func(ctx context.Context, err *trigger.CallbackError) {
//	        log.Warn("callback failed", "event", err.Event, "panicked", err.Panicked())
//	    }),
//	)
//
// # Lifecycle
//
// Close cancels every pending schedule, rejects new registrations and schedules,
// and waits for in-flight background tasks up to the shutdown timeout. Run adapts
// Close to errgroup:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(t.Run(ctx))
//
// # Capacity
//
// Memory used for scheduling is bounded only by the number of outstanding
// (neither fired nor canceled) schedules. Every schedule holds one goroutine
// until it fires or is canceled.
//
// # Configuration
//
// Config carries env tags for use with the core/config package:
//
//	var cfg trigger.Config
//	config.MustLoad(&cfg)
//	t := trigger.NewFromConfig[int](cfg, trigger.WithLogger(logger))
package trigger
