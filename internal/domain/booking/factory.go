package booking

import (
	"time"

	"lendloop/internal/pkg/clock"
	"lendloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrItemUnavailable = errs.New("item is not available for booking")
	ErrOwnItemBooking  = errs.New("owner cannot book own item")
)

// ItemSpec is the slice of item state the creation checks need. The write
// side reads it as a snapshot so the domain never depends on query types.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// ValidatePeriod runs the date checks alone. Callers use it to report a bad
// period before any store lookup; New repeats the check so the factory stays
// safe on its own.
func (f *Factory) ValidatePeriod(start, end time.Time) error {
	_, err := NewPeriodAt(f.Clock.Now(), start, end)
	return err
}

// New runs the creation checks in their fixed order (dates, availability,
// ownership) and allocates a WAITING booking. Item and booker existence are
// checked by the caller before the snapshot reaches this point.
func (f *Factory) New(item ItemSpec, bookerID uuid.UUID, start, end time.Time) (*Booking, error) {
	period, err := NewPeriodAt(f.Clock.Now(), start, end)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return nil, ErrOwnItemBooking
	}
	return newBooking(item.ID, bookerID, period), nil
}
