//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	dombooking "lendloop/internal/domain/booking"
	"lendloop/internal/infra"
	"lendloop/internal/infra/db"
	"lendloop/internal/pkg/clock"
	"lendloop/internal/usecase/commands"
	"lendloop/internal/usecase/shared"
	"lendloop/tests/common/builder"
	queriesmock "lendloop/tests/mock/queries"
	sharedmock "lendloop/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingCommandsMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	bookings *sharedmock.MockBookingRepository
	views    *queriesmock.MockBookingReadStore
}

func newBookingCommands(t *testing.T, now time.Time) (commands.BookingCommands, bookingCommandsMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := bookingCommandsMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		views:    queriesmock.NewMockBookingReadStore(ctrl),
	}
	factory := dombooking.NewFactory(clock.NewMockClock(now))
	cmds := commands.NewBookingCommands(mocks.uow, factory, mocks.views)
	return cmds, mocks
}

// expectWithin runs the transactional closure against the mock Tx.
func expectWithin(mocks bookingCommandsMocks) {
	mocks.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, mocks.tx)
		})
}

// =============================================================================
// Create Tests
// =============================================================================

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	bookerID := uuid.New()
	itemSnap := builder.NewItemBuilder().BuildSnapshot()
	input := commands.CreateBookingInput{
		ItemID: itemSnap.ID,
		Start:  now.Add(time.Hour),
		End:    now.Add(2 * time.Hour),
	}

	t.Run("persists waiting booking and returns its view", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)
		createdID := uuid.New()
		view := builder.NewBookingBuilder().BuildViewQuery()

		mocks.uow.EXPECT().CommandReads().Return(mocks.reads)
		mocks.reads.EXPECT().UserByID(ctx, bookerID).Return(&shared.UserSnapshot{ID: bookerID}, nil)
		mocks.reads.EXPECT().ItemByID(ctx, input.ItemID).Return(itemSnap, nil)

		expectWithin(mocks)
		mocks.tx.EXPECT().Bookings().Return(mocks.bookings)
		mocks.tx.EXPECT().DB().Return(db.DBTX(nil))
		mocks.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.DBTX, entity *dombooking.Booking) (uuid.UUID, error) {
				assert.Equal(t, dombooking.StatusWaiting, entity.Status())
				assert.Equal(t, input.ItemID, entity.ItemID())
				assert.Equal(t, bookerID, entity.BookerID())
				assert.Equal(t, input.Start, entity.Period().Start())
				assert.Equal(t, input.End, entity.Period().End())
				return createdID, nil
			})
		mocks.views.EXPECT().FindByID(ctx, createdID).Return(view, nil)

		actual, err := cmds.Create(ctx, bookerID, input)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("missing booker", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)
		mocks.uow.EXPECT().CommandReads().Return(mocks.reads)
		mocks.reads.EXPECT().UserByID(ctx, bookerID).Return(nil, infra.NotFoundErr("user not found"))

		_, err := cmds.Create(ctx, bookerID, input)
		require.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("missing item", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)
		mocks.uow.EXPECT().CommandReads().Return(mocks.reads)
		mocks.reads.EXPECT().UserByID(ctx, bookerID).Return(&shared.UserSnapshot{ID: bookerID}, nil)
		mocks.reads.EXPECT().ItemByID(ctx, input.ItemID).Return(nil, infra.NotFoundErr("item not found"))

		_, err := cmds.Create(ctx, bookerID, input)
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)
		unavailable := *itemSnap
		unavailable.Available = false

		mocks.uow.EXPECT().CommandReads().Return(mocks.reads)
		mocks.reads.EXPECT().UserByID(ctx, bookerID).Return(&shared.UserSnapshot{ID: bookerID}, nil)
		mocks.reads.EXPECT().ItemByID(ctx, input.ItemID).Return(&unavailable, nil)

		_, err := cmds.Create(ctx, bookerID, input)
		require.ErrorIs(t, err, dombooking.ErrItemUnavailable)
	})

	t.Run("own item", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)
		mocks.uow.EXPECT().CommandReads().Return(mocks.reads)
		mocks.reads.EXPECT().UserByID(ctx, itemSnap.OwnerID).Return(&shared.UserSnapshot{ID: itemSnap.OwnerID}, nil)
		mocks.reads.EXPECT().ItemByID(ctx, input.ItemID).Return(itemSnap, nil)

		_, err := cmds.Create(ctx, itemSnap.OwnerID, input)
		require.ErrorIs(t, err, dombooking.ErrOwnItemBooking)
	})

	t.Run("inverted period", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)
		bad := input
		bad.Start, bad.End = bad.End, bad.Start

		mocks.uow.EXPECT().CommandReads().Return(mocks.reads)
		mocks.reads.EXPECT().UserByID(ctx, bookerID).Return(&shared.UserSnapshot{ID: bookerID}, nil)

		_, err := cmds.Create(ctx, bookerID, bad)
		require.ErrorIs(t, err, dombooking.ErrInvalidRange)
	})

	t.Run("date checks run before the item lookup", func(t *testing.T) {
		// When both the period and the item are bad, the period error wins.
		// No ItemByID expectation is set: the lookup must not run at all,
		// so a booking against a nonexistent item still reports the range.
		cmds, mocks := newBookingCommands(t, now)
		bad := commands.CreateBookingInput{
			ItemID: uuid.New(),
			Start:  now.Add(2 * time.Hour),
			End:    now.Add(time.Hour),
		}

		mocks.uow.EXPECT().CommandReads().Return(mocks.reads)
		mocks.reads.EXPECT().UserByID(ctx, bookerID).Return(&shared.UserSnapshot{ID: bookerID}, nil)

		_, err := cmds.Create(ctx, bookerID, bad)
		require.ErrorIs(t, err, dombooking.ErrInvalidRange)
		require.NotErrorIs(t, err, commands.ErrItemNotFound)
	})
}

// =============================================================================
// Decide Tests
// =============================================================================

func TestBookingCommands_Decide(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	snap := builder.NewBookingBuilder().BuildSnapshot()

	t.Run("approve waiting booking", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)
		view := builder.NewBookingBuilder().AsApproved().BuildViewQuery()

		expectWithin(mocks)
		mocks.tx.EXPECT().Reads().Return(mocks.reads)
		mocks.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		mocks.tx.EXPECT().Bookings().Return(mocks.bookings)
		mocks.tx.EXPECT().DB().Return(db.DBTX(nil))
		mocks.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, dombooking.StatusApproved).Return(nil)
		mocks.views.EXPECT().FindByID(ctx, snap.ID).Return(view, nil)

		actual, err := cmds.Decide(ctx, snap.ItemOwnerID, snap.ID, true)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("reject waiting booking", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)
		view := builder.NewBookingBuilder().AsRejected().BuildViewQuery()

		expectWithin(mocks)
		mocks.tx.EXPECT().Reads().Return(mocks.reads)
		mocks.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)
		mocks.tx.EXPECT().Bookings().Return(mocks.bookings)
		mocks.tx.EXPECT().DB().Return(db.DBTX(nil))
		mocks.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, dombooking.StatusRejected).Return(nil)
		mocks.views.EXPECT().FindByID(ctx, snap.ID).Return(view, nil)

		actual, err := cmds.Decide(ctx, snap.ItemOwnerID, snap.ID, false)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("missing booking", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)

		expectWithin(mocks)
		mocks.tx.EXPECT().Reads().Return(mocks.reads)
		mocks.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(nil, infra.NotFoundErr("booking not found"))

		_, err := cmds.Decide(ctx, snap.ItemOwnerID, snap.ID, true)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("caller is not the item owner", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)

		expectWithin(mocks)
		mocks.tx.EXPECT().Reads().Return(mocks.reads)
		mocks.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := cmds.Decide(ctx, snap.BookerID, snap.ID, true)
		require.ErrorIs(t, err, commands.ErrNotItemOwner)
	})

	t.Run("repeated approval", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)
		approved := *snap
		approved.Status = dombooking.StatusApproved

		expectWithin(mocks)
		mocks.tx.EXPECT().Reads().Return(mocks.reads)
		mocks.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(&approved, nil)

		_, err := cmds.Decide(ctx, snap.ItemOwnerID, snap.ID, true)
		require.ErrorIs(t, err, dombooking.ErrAlreadyApproved)
	})

	t.Run("repeated rejection", func(t *testing.T) {
		cmds, mocks := newBookingCommands(t, now)
		rejected := *snap
		rejected.Status = dombooking.StatusRejected

		expectWithin(mocks)
		mocks.tx.EXPECT().Reads().Return(mocks.reads)
		mocks.reads.EXPECT().BookingByID(gomock.Any(), snap.ID).Return(&rejected, nil)

		_, err := cmds.Decide(ctx, snap.ItemOwnerID, snap.ID, false)
		require.ErrorIs(t, err, dombooking.ErrAlreadyRejected)
	})
}
