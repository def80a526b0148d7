package booking

import (
	"fmt"
	"time"

	"lendloop/internal/pkg/errs"
)

var (
	ErrInvalidRange = errs.New("booking end must be after start")
	ErrEndInPast    = errs.New("booking end is in the past")
	ErrStartInPast  = errs.New("booking start is in the past")
)

// Period is the half-open rental interval [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriodAt validates the proposed interval against now. The check order is
// fixed (range, end, start) so callers always see the same failure for the
// same input.
func NewPeriodAt(now, start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidRange
	}
	if end.Before(now) {
		return Period{}, ErrEndInPast
	}
	if start.Before(now) {
		return Period{}, ErrStartInPast
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod rebuilds a stored interval without re-running the
// creation-time checks.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Contains reports whether t falls strictly inside the interval, the
// "current" bucket of the temporal classifier.
func (p Period) Contains(t time.Time) bool {
	return p.start.Before(t) && t.Before(p.end)
}

// FinishedBy reports whether the rental is over at t, the condition that
// grants comment eligibility.
func (p Period) FinishedBy(t time.Time) bool {
	return p.end.Before(t)
}

func (p Period) StartsAfter(t time.Time) bool {
	return t.Before(p.start)
}

func (p Period) String() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}
