package trigger

import (
	"context"
	"slices"

	"github.com/dmitrymomot/trigger/core/logger"
)

// CallbackID identifies a registered callback. IDs are unique for the lifetime
// of one Trigger, increase monotonically and are never reused. The first id is 1.
type CallbackID uint64

// Callback is invoked with the trigger parameter when its event fires.
// Returning an error or panicking marks the invocation as failed.
type Callback[T any] func(ctx context.Context, param T) error

type entry[T any] struct {
	id       CallbackID
	priority Priority
	callback Callback[T]
}

// Register adds a callback for event and returns its id.
// Priority defaults to Normal unless WithPriority or WithDefaultPriority say otherwise.
//
// Example:
//
//	id, err := t.Register("order.paid", func(ctx context.Context, o Order) error {
//	    return sendReceipt(ctx, o)
//	}, trigger.WithPriority(trigger.PriorityHigh))
func (t *Trigger[T]) Register(event string, cb Callback[T], opts ...RegisterOption) (CallbackID, error) {
	if event == "" {
		return 0, ErrEmptyEvent
	}
	if cb == nil {
		return 0, ErrNilCallback
	}

	o := &registerOptions{priority: t.defaultPriority}
	for _, opt := range opts {
		opt(o)
	}
	if !o.priority.Valid() {
		return 0, ErrInvalidPriority
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, ErrClosed
	}
	id := CallbackID(t.nextID.Add(1))
	t.callbacks[event] = append(t.callbacks[event], entry[T]{
		id:       id,
		priority: o.priority,
		callback: cb,
	})
	t.mu.Unlock()

	t.logger.Debug("callback registered",
		logger.Event(event),
		logger.CallbackID(uint64(id)),
		logger.Priority(o.priority.String()))

	return id, nil
}

// Unregister removes the callback with the given id from event.
// Returns false if the event or id is unknown.
func (t *Trigger[T]) Unregister(event string, id CallbackID) bool {
	if event == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	entries, ok := t.callbacks[event]
	if !ok {
		return false
	}

	idx := slices.IndexFunc(entries, func(e entry[T]) bool { return e.id == id })
	if idx < 0 {
		return false
	}

	// Delete keeps the remaining entries in registration order
	entries = slices.Delete(entries, idx, idx+1)
	if len(entries) == 0 {
		delete(t.callbacks, event)
	} else {
		t.callbacks[event] = entries
	}

	return true
}

// UnregisterAll removes every callback for event and returns how many were removed.
func (t *Trigger[T]) UnregisterAll(event string) int {
	if event == "" {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.callbacks[event])
	delete(t.callbacks, event)
	return n
}

// HasCallbacks reports whether any callback is registered for event.
func (t *Trigger[T]) HasCallbacks(event string) bool {
	return t.CallbackCount(event) > 0
}

// CallbackCount returns the number of callbacks registered for event.
func (t *Trigger[T]) CallbackCount(event string) int {
	if event == "" {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.callbacks[event])
}

// Events returns the sorted names of events that have at least one callback.
func (t *Trigger[T]) Events() []string {
	t.mu.RLock()
	events := make([]string, 0, len(t.callbacks))
	for event := range t.callbacks {
		events = append(events, event)
	}
	t.mu.RUnlock()

	slices.Sort(events)
	return events
}
