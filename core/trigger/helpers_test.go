package trigger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrymomot/trigger/core/trigger"
)

// newTrigger creates a trigger that is closed when the test ends.
func newTrigger[T any](t *testing.T, opts ...trigger.Option) *trigger.Trigger[T] {
	t.Helper()
	tr := trigger.New[T](opts...)
	t.Cleanup(func() { _ = tr.Close() })
	return tr
}

// recorder collects callback invocations in order.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(name string) trigger.Callback[int] {
	return func(ctx context.Context, _ int) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, name)
		return nil
	}
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func noop(context.Context, int) error { return nil }
