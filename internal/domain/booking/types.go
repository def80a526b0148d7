package booking

import "lendloop/internal/pkg/errs"

var ErrUnknownState = errs.New("unknown state")

// Status is the lifecycle state of a booking. CANCELED is part of the stored
// vocabulary for data compatibility but no transition currently produces it.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// State is a temporal/status listing bucket. Each booking with a matching
// vantage id falls into exactly one of CURRENT/PAST/FUTURE by date,
// independent of its WAITING/REJECTED status bucket.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func (s State) String() string {
	return string(s)
}

// ParseState rejects unknown tokens instead of defaulting to ALL.
func ParseState(text string) (State, error) {
	switch State(text) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(text), nil
	default:
		return "", errs.Mark(errs.Newf("unknown state: %s", text), ErrUnknownState)
	}
}
