//go:build unit || e2e

package builder

import (
	"time"

	dombooking "lendloop/internal/domain/booking"
	reqdto "lendloop/internal/handler/dto/request"
	"lendloop/internal/usecase/queries"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	ItemName   string
	OwnerID    uuid.UUID
	BookerID   uuid.UUID
	BookerName string
	Start      time.Time
	End        time.Time
	Status     dombooking.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &BookingBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		ItemName:   "Cordless Drill",
		OwnerID:    uuid.New(),
		BookerID:   uuid.New(),
		BookerName: "Booker",
		Start:      now.Add(24 * time.Hour),
		End:        now.Add(48 * time.Hour),
		Status:     dombooking.StatusWaiting,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.ReconstructBooking(
		b.ID, b.ItemID, b.BookerID,
		dombooking.ReconstructPeriod(b.Start, b.End),
		b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status.String(),
		Item: queries.ItemRef{
			ID:      b.ItemID,
			OwnerID: b.OwnerID,
			Name:    b.ItemName,
		},
		Booker: queries.UserRef{
			ID:   b.BookerID,
			Name: b.BookerName,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildRef() *queries.BookingRef {
	return &queries.BookingRef{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          b.ID,
		ItemID:      b.ItemID,
		ItemOwnerID: b.OwnerID,
		BookerID:    b.BookerID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithItemID(itemID uuid.UUID) *BookingBuilder {
	b.ItemID = itemID
	return b
}

func (b *BookingBuilder) WithOwnerID(ownerID uuid.UUID) *BookingBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithBookerID(bookerID uuid.UUID) *BookingBuilder {
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsApproved() *BookingBuilder {
	b.Status = dombooking.StatusApproved
	return b
}

func (b *BookingBuilder) AsRejected() *BookingBuilder {
	b.Status = dombooking.StatusRejected
	return b
}

// AsFinished places the whole period before the builder's creation time.
func (b *BookingBuilder) AsFinished() *BookingBuilder {
	b.Start = b.CreatedAt.Add(-48 * time.Hour)
	b.End = b.CreatedAt.Add(-24 * time.Hour)
	return b
}
