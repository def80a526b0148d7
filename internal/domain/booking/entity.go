package booking

import (
	"time"

	"lendloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyApproved = errs.New("booking is already approved")
	ErrAlreadyRejected = errs.New("booking is already rejected")
)

// Booking references its item and booker without owning them; persistence is
// the sole owner of the referenced records.
type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func newBooking(itemID, bookerID uuid.UUID, period Period) *Booking {
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	period Period,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide moves a booking to APPROVED or REJECTED. Terminal states never
// change again: a repeated decision fails rather than silently succeeding.
func (b *Booking) Decide(approved bool) error {
	if approved {
		if b.status == StatusApproved {
			return ErrAlreadyApproved
		}
		b.status = StatusApproved
		return nil
	}
	if b.status == StatusRejected {
		return ErrAlreadyRejected
	}
	b.status = StatusRejected
	return nil
}

// VisibleTo limits single-booking reads to the booker and the item's owner.
func (b *Booking) VisibleTo(userID, itemOwnerID uuid.UUID) bool {
	return b.bookerID == userID || itemOwnerID == userID
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Period() Period       { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
