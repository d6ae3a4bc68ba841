package trigger_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/trigger/core/trigger"
)

func TestQueue_EnqueueAndProcess(t *testing.T) {
	t.Parallel()
	tr := newTrigger[int](t)

	var sum atomic.Int64
	_, err := tr.Register("add", func(_ context.Context, p int) error {
		sum.Add(int64(p))
		return nil
	})
	require.NoError(t, err)
	_, err = tr.Register("add", noop)
	require.NoError(t, err)

	q := trigger.NewQueue[int](trigger.WithQueueSize(8))
	assert.Equal(t, 8, q.Cap())

	for i := 1; i <= 5; i++ {
		require.NoError(t, q.Enqueue("add", i))
	}
	require.NoError(t, q.Enqueue("unknown", 100))
	assert.Equal(t, 6, q.Len())

	// Two callbacks per "add" request, none for "unknown"
	assert.Equal(t, 4, tr.ProcessQueue(context.Background(), q, 2))
	assert.Equal(t, int64(3), sum.Load())
	assert.Equal(t, 4, q.Len())

	assert.Equal(t, 6, tr.ProcessQueue(context.Background(), q, 0))
	assert.Equal(t, int64(15), sum.Load())
	assert.Equal(t, 0, q.Len())

	// Empty queue returns immediately
	assert.Equal(t, 0, tr.ProcessQueue(context.Background(), q, 0))
}

func TestQueue_Full(t *testing.T) {
	t.Parallel()

	q := trigger.NewQueue[int](trigger.WithQueueSize(2))
	require.NoError(t, q.Enqueue("e", 1))
	require.NoError(t, q.Enqueue("e", 2))
	assert.ErrorIs(t, q.Enqueue("e", 3), trigger.ErrQueueFull)
	assert.Equal(t, 2, q.Len())
}

func TestQueue_Validation(t *testing.T) {
	t.Parallel()

	q := trigger.NewQueue[int]()
	assert.Equal(t, trigger.DefaultQueueSize, q.Cap())
	assert.ErrorIs(t, q.Enqueue("", 1), trigger.ErrEmptyEvent)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_Close(t *testing.T) {
	t.Parallel()
	tr := newTrigger[int](t)

	var calls atomic.Int32
	_, err := tr.Register("e", func(context.Context, int) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)

	q := trigger.NewQueue[int]()
	require.NoError(t, q.Enqueue("e", 1))
	require.NoError(t, q.Close())

	assert.ErrorIs(t, q.Enqueue("e", 2), trigger.ErrQueueClosed)
	assert.ErrorIs(t, q.Close(), trigger.ErrQueueClosed)

	// Buffered requests survive Close
	assert.Equal(t, 1, tr.ProcessQueue(context.Background(), q, 0))
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 0, tr.ProcessQueue(context.Background(), q, 0))
}

func TestQueue_CanceledContext(t *testing.T) {
	t.Parallel()
	tr := newTrigger[int](t)

	_, err := tr.Register("e", noop)
	require.NoError(t, err)

	q := trigger.NewQueue[int]()
	require.NoError(t, q.Enqueue("e", 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, 0, tr.ProcessQueue(ctx, q, 0))
	assert.Equal(t, 1, q.Len())
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	t.Parallel()
	tr := newTrigger[int](t)

	var calls atomic.Int32
	_, err := tr.Register("e", func(context.Context, int) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)

	q := trigger.NewQueue[int](trigger.WithQueueSize(1000))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				assert.NoError(t, q.Enqueue("e", i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, tr.ProcessQueue(context.Background(), q, 0))
	assert.Equal(t, int32(1000), calls.Load())
}
