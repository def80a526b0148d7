package queries

import (
	"context"
	"time"

	"lendloop/internal/domain/booking"
	"lendloop/internal/infra"
	"lendloop/internal/pkg/clock"
	"lendloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingAccessDenied = errs.New("booking is visible to its booker and the item owner only")
)

// BookingReadStore exposes one ordered, paginated query per classifier
// predicate. ALL/CURRENT/PAST and the status buckets order by end desc;
// FUTURE orders by start desc; ties break on id desc.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)

	AllByBooker(ctx context.Context, bookerID uuid.UUID, limit, offset int32) ([]*BookingView, error)
	CurrentByBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, limit, offset int32) ([]*BookingView, error)
	PastByBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, limit, offset int32) ([]*BookingView, error)
	FutureByBooker(ctx context.Context, bookerID uuid.UUID, now time.Time, limit, offset int32) ([]*BookingView, error)
	ByStatusAndBooker(ctx context.Context, bookerID uuid.UUID, status booking.Status, limit, offset int32) ([]*BookingView, error)

	AllByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*BookingView, error)
	CurrentByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, limit, offset int32) ([]*BookingView, error)
	PastByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, limit, offset int32) ([]*BookingView, error)
	FutureByOwner(ctx context.Context, ownerID uuid.UUID, now time.Time, limit, offset int32) ([]*BookingView, error)
	ByStatusAndOwner(ctx context.Context, ownerID uuid.UUID, status booking.Status, limit, offset int32) ([]*BookingView, error)

	// LastForItem: latest booking with start < now (start desc, limit 1).
	// NextForItem: earliest booking with start > now (start asc, limit 1).
	// Both return nil without error when no such booking exists.
	LastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
	NextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
}

type BookingQueries interface {
	// GetByID returns the booking to its booker or the item owner; anyone
	// else gets ErrBookingAccessDenied.
	GetByID(ctx context.Context, requesterID, bookingID uuid.UUID) (*BookingView, error)
	// ListByBooker classifies the user's bookings as renter into the view
	// named by stateText. Unknown tokens fail with booking.ErrUnknownState.
	ListByBooker(ctx context.Context, bookerID uuid.UUID, stateText string, page Page) ([]*BookingView, error)
	// ListByOwner classifies bookings against the user's items.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, stateText string, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		clock:    clk,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, requesterID, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.Booker.ID != requesterID && view.Item.OwnerID != requesterID {
		return nil, ErrBookingAccessDenied
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID uuid.UUID, stateText string, page Page) ([]*BookingView, error) {
	state, err := q.prepare(ctx, bookerID, stateText)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	limit, offset := page.Limit(), page.Offset()

	switch state {
	case booking.StateAll:
		return q.bookings.AllByBooker(ctx, bookerID, limit, offset)
	case booking.StateCurrent:
		return q.bookings.CurrentByBooker(ctx, bookerID, now, limit, offset)
	case booking.StatePast:
		return q.bookings.PastByBooker(ctx, bookerID, now, limit, offset)
	case booking.StateFuture:
		return q.bookings.FutureByBooker(ctx, bookerID, now, limit, offset)
	case booking.StateWaiting:
		return q.bookings.ByStatusAndBooker(ctx, bookerID, booking.StatusWaiting, limit, offset)
	case booking.StateRejected:
		return q.bookings.ByStatusAndBooker(ctx, bookerID, booking.StatusRejected, limit, offset)
	default:
		return nil, booking.ErrUnknownState
	}
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, stateText string, page Page) ([]*BookingView, error) {
	state, err := q.prepare(ctx, ownerID, stateText)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	limit, offset := page.Limit(), page.Offset()

	switch state {
	case booking.StateAll:
		return q.bookings.AllByOwner(ctx, ownerID, limit, offset)
	case booking.StateCurrent:
		return q.bookings.CurrentByOwner(ctx, ownerID, now, limit, offset)
	case booking.StatePast:
		return q.bookings.PastByOwner(ctx, ownerID, now, limit, offset)
	case booking.StateFuture:
		return q.bookings.FutureByOwner(ctx, ownerID, now, limit, offset)
	case booking.StateWaiting:
		return q.bookings.ByStatusAndOwner(ctx, ownerID, booking.StatusWaiting, limit, offset)
	case booking.StateRejected:
		return q.bookings.ByStatusAndOwner(ctx, ownerID, booking.StatusRejected, limit, offset)
	default:
		return nil, booking.ErrUnknownState
	}
}

// prepare resolves the vantage user, then parses the view token. The user
// check runs first; tests pin that order.
func (q *bookingQueriesImpl) prepare(ctx context.Context, userID uuid.UUID, stateText string) (booking.State, error) {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return booking.ParseState(stateText)
}
