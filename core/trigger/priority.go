package trigger

import (
	"fmt"
	"strings"
)

// Priority controls invocation order within one dispatch.
// Lower values run first: High, then Normal, then Low.
type Priority int8

const (
	PriorityHigh Priority = iota
	PriorityNormal
	PriorityLow

	PriorityDefault = PriorityNormal
)

// Valid checks if the priority is one of the defined classes.
func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	default:
		return fmt.Sprintf("priority(%d)", int8(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, ErrInvalidPriority
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so Priority can be read from env config.
func (p *Priority) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "high":
		*p = PriorityHigh
	case "normal", "":
		*p = PriorityNormal
	case "low":
		*p = PriorityLow
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPriority, text)
	}
	return nil
}
