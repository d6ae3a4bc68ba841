package trigger

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of a scheduled trigger.
// Pending moves to exactly one of Fired or Canceled and never changes again.
type State int32

const (
	StatePending State = iota
	StateFired
	StateCanceled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFired:
		return "fired"
	case StateCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// canceler removes a token from the registry it was scheduled on.
type canceler interface {
	cancelToken(tok *Token) bool
}

// Token is the cancellation handle of one scheduled trigger.
type Token struct {
	id    uuid.UUID
	event string
	delay time.Duration
	owner canceler

	state      atomic.Int32
	dispatched atomic.Int64
	canceled   chan struct{}
	done       chan struct{}
}

func newToken(owner canceler, event string, delay time.Duration) *Token {
	return &Token{
		id:       uuid.New(),
		event:    event,
		delay:    delay,
		owner:    owner,
		canceled: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// ID returns the unique identifier of this schedule.
func (tok *Token) ID() uuid.UUID { return tok.id }

// Event returns the event this schedule will fire.
func (tok *Token) Event() string { return tok.event }

// Delay returns the requested minimum delay.
func (tok *Token) Delay() time.Duration { return tok.delay }

// State returns the current lifecycle state.
func (tok *Token) State() State { return State(tok.state.Load()) }

// Canceled reports whether the schedule was canceled before firing.
func (tok *Token) Canceled() bool { return tok.State() == StateCanceled }

// Done returns a channel closed when the background task has exited,
// after dispatching or after observing cancellation.
func (tok *Token) Done() <-chan struct{} { return tok.done }

// Dispatched returns how many callbacks succeeded when the schedule fired.
// It is meaningful once Done is closed.
func (tok *Token) Dispatched() int { return int(tok.dispatched.Load()) }

// Cancel prevents the schedule from firing and removes it from the pending registry.
// Returns true only for the call that moved the schedule from Pending to Canceled.
// Cancel does not wait for the background task to exit; use Done for that.
func (tok *Token) Cancel() bool {
	return tok.owner.cancelToken(tok)
}

// markCanceled performs the Pending to Canceled transition and wakes the sleeping task.
func (tok *Token) markCanceled() bool {
	if !tok.state.CompareAndSwap(int32(StatePending), int32(StateCanceled)) {
		return false
	}
	close(tok.canceled)
	return true
}

// markFired performs the Pending to Fired transition.
func (tok *Token) markFired() bool {
	return tok.state.CompareAndSwap(int32(StatePending), int32(StateFired))
}
