package commands

import (
	"context"
	"time"

	dombooking "lendloop/internal/domain/booking"
	"lendloop/internal/infra"
	"lendloop/internal/pkg/errs"
	"lendloop/internal/usecase/queries"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrNotItemOwner    = errs.New("user is not the item owner")
	ErrStoreFailure    = errs.New("database operation failed")
)

type CreateBookingInput struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	// Create validates the proposed booking and persists it in WAITING state.
	Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	// Decide approves or rejects a WAITING booking; only the item owner may
	// decide, and terminal states never transition again.
	Decide(ctx context.Context, ownerID, bookingID uuid.UUID, approved bool) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *dombooking.Factory
	views   queries.BookingReadStore
}

func NewBookingCommands(uow shared.UnitOfWork, factory *dombooking.Factory, views queries.BookingReadStore) BookingCommands {
	return &bookingUseCaseImpl{
		uow:     uow,
		factory: factory,
		views:   views,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, bookerID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	reads := uc.uow.CommandReads()

	if _, err := reads.UserByID(ctx, bookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	// The date checks come before the item lookup; a bad period is reported
	// even when the item does not exist.
	if err := uc.factory.ValidatePeriod(in.Start, in.End); err != nil {
		return nil, err
	}

	itemSnap, err := reads.ItemByID(ctx, in.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	entity, err := uc.factory.New(dombooking.ItemSpec{
		ID:        itemSnap.ID,
		OwnerID:   itemSnap.OwnerID,
		Available: itemSnap.Available,
	}, bookerID, in.Start, in.End)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	view, err := uc.views.FindByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}

func (uc *bookingUseCaseImpl) Decide(ctx context.Context, ownerID, bookingID uuid.UUID, approved bool) (*queries.BookingView, error) {
	// The terminal-state guard reads the current status and writes the new
	// one; running both inside one ReadCommitted transaction keeps a
	// concurrent second decision from racing past the guard.
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().BookingByID(ctx, bookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(txErr, ErrStoreFailure)
		}
		if snap.ItemOwnerID != ownerID {
			return ErrNotItemOwner
		}

		entity := dombooking.ReconstructBooking(
			snap.ID, snap.ItemID, snap.BookerID,
			dombooking.ReconstructPeriod(snap.Start, snap.End),
			snap.Status,
			snap.CreatedAt, snap.UpdatedAt,
		)
		if txErr = entity.Decide(approved); txErr != nil {
			return txErr
		}

		if txErr = tx.Bookings().UpdateStatus(ctx, tx.DB(), entity.ID(), entity.Status()); txErr != nil {
			return errs.Mark(txErr, ErrStoreFailure)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.views.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return view, nil
}
