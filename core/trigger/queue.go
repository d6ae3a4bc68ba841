package trigger

import (
	"context"
	"sync"
)

const (
	// DefaultQueueSize is the default capacity of a trigger queue.
	DefaultQueueSize = 1024
)

type queuedTrigger[T any] struct {
	event string
	param T
}

// Queue buffers (event, param) pairs for later dispatch with Trigger.ProcessQueue.
// Producers never block: Enqueue fails with ErrQueueFull when the buffer is full.
// Queue is safe for concurrent producers and consumers.
//
// Example:
//
//	q := trigger.NewQueue[Tick](trigger.WithQueueSize(4096))
//	defer q.Close()
//
//	// hot path
//	_ = q.Enqueue("tick", tick)
//
//	// consumer loop
//	t.ProcessQueue(ctx, q, 100)
type Queue[T any] struct {
	ch     chan queuedTrigger[T]
	mu     sync.RWMutex
	closed bool
}

type queueOptions struct {
	size int
}

// QueueOption configures a Queue.
type QueueOption func(*queueOptions)

// WithQueueSize sets the queue capacity. Default is 1024.
func WithQueueSize(size int) QueueOption {
	return func(o *queueOptions) {
		if size > 0 {
			o.size = size
		}
	}
}

// NewQueue creates a new bounded trigger queue.
func NewQueue[T any](opts ...QueueOption) *Queue[T] {
	o := &queueOptions{size: DefaultQueueSize}
	for _, opt := range opts {
		opt(o)
	}
	return &Queue[T]{ch: make(chan queuedTrigger[T], o.size)}
}

// Enqueue adds a trigger request without blocking.
func (q *Queue[T]) Enqueue(event string, param T) error {
	if event == "" {
		return ErrEmptyEvent
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.ch <- queuedTrigger[T]{event: event, param: param}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Len returns the number of buffered trigger requests.
func (q *Queue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int {
	return cap(q.ch)
}

// Close stops accepting new requests. Requests already buffered can still be processed.
func (q *Queue[T]) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.closed = true
	close(q.ch)
	return nil
}

// ProcessQueue dispatches up to max queued requests (0 means all currently buffered)
// without blocking and returns the total number of callbacks that succeeded.
// It stops early when ctx is done.
func (t *Trigger[T]) ProcessQueue(ctx context.Context, q *Queue[T], max int) int {
	total := 0
	for processed := 0; max == 0 || processed < max; processed++ {
		if ctx.Err() != nil {
			return total
		}

		select {
		case item, ok := <-q.ch:
			if !ok {
				return total
			}
			total += t.Trigger(ctx, item.event, item.param)
		default:
			return total
		}
	}
	return total
}
