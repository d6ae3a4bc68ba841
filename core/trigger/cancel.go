package trigger

import "github.com/dmitrymomot/trigger/core/logger"

// Cancel cancels every pending schedule for event and returns how many were canceled.
// Schedules that already fired or were already canceled are not counted.
func (t *Trigger[T]) Cancel(event string) int {
	if event == "" {
		return 0
	}

	t.mu.Lock()
	n := 0
	for tok := range t.pending[event] {
		if tok.markCanceled() {
			n++
		}
	}
	delete(t.pending, event)
	t.mu.Unlock()

	if n > 0 {
		t.schedulesCanceled.Add(int64(n))
		t.logger.Debug("scheduled triggers canceled",
			logger.Event(event),
			logger.Count("canceled", n))
	}

	return n
}

// CancelAll cancels every pending schedule for every event.
func (t *Trigger[T]) CancelAll() int {
	t.mu.Lock()
	n := t.cancelAllLocked()
	t.mu.Unlock()

	if n > 0 {
		t.logger.Debug("all scheduled triggers canceled", logger.Count("canceled", n))
	}

	return n
}

// PendingCount returns the number of schedules for event that have neither fired nor been canceled.
func (t *Trigger[T]) PendingCount(event string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.pending[event])
}

func (t *Trigger[T]) cancelAllLocked() int {
	n := 0
	for _, set := range t.pending {
		for tok := range set {
			if tok.markCanceled() {
				n++
			}
		}
	}
	clear(t.pending)
	t.schedulesCanceled.Add(int64(n))
	return n
}

// cancelToken implements canceler for a single token.
func (t *Trigger[T]) cancelToken(tok *Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !tok.markCanceled() {
		return false
	}
	t.removePendingLocked(tok)
	t.schedulesCanceled.Add(1)
	return true
}

func (t *Trigger[T]) removePendingLocked(tok *Token) {
	set, ok := t.pending[tok.event]
	if !ok {
		return
	}
	delete(set, tok)
	if len(set) == 0 {
		delete(t.pending, tok.event)
	}
}
