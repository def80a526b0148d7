package shared

import (
	"context"
	"time"

	"lendloop/internal/domain/booking"
	"lendloop/internal/domain/comment"
	"lendloop/internal/domain/item"
	"lendloop/internal/domain/request"
	"lendloop/internal/domain/user"
	"lendloop/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: transaction for write operations, ReadCommitted with retry on
	// serialization failures. The approve guard is a read-modify-write and
	// relies on this isolation.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command-side reads outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Comments() CommentRepository
	Users() UserRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads returns minimal snapshots so the write side never depends on
// read-model view types.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// HasFinishedBooking reports whether bookerID has any booking on itemID
	// with end < now, regardless of booking status.
	HasFinishedBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)
}

type UserSnapshot struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	Start       time.Time
	End         time.Time
	Status      booking.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx db.DBTX, it *item.Item) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, it *item.Item) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *comment.Comment) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, u *user.User) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type RequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *request.ItemRequest) (uuid.UUID, error)
}
