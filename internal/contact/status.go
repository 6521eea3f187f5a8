package contact

import (
	"errors"
	"fmt"
)

// Status is the lifecycle of the contact form.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSent
	StatusFailed
)

// Messages shown in the status banner.
const (
	SentMessage   = "Thanks for reaching out! I will get back to you soon."
	FailedMessage = "Something went wrong. Please try again."
)

// ErrInvalidTransition is returned by Transition for moves the form cannot make.
var ErrInvalidTransition = errors.New("invalid status transition")

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusSent:
		return "sent"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Busy reports whether input should be blocked.
func (s Status) Busy() bool {
	return s == StatusSending
}

// Message returns the banner text for s, or "" when none is shown.
func (s Status) Message() string {
	switch s {
	case StatusSent:
		return SentMessage
	case StatusFailed:
		return FailedMessage
	default:
		return ""
	}
}

// Transition returns the next status, or ErrInvalidTransition.
//
//	idle    -> sending
//	sending -> sent | failed
//	sent    -> idle
//	failed  -> idle | sending
func (s Status) Transition(to Status) (Status, error) {
	ok := false
	switch s {
	case StatusIdle:
		ok = to == StatusSending
	case StatusSending:
		ok = to == StatusSent || to == StatusFailed
	case StatusSent:
		ok = to == StatusIdle
	case StatusFailed:
		ok = to == StatusIdle || to == StatusSending
	}
	if !ok {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
	return to, nil
}
