//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lendloop/internal/infra"
	"lendloop/internal/pkg/clock"
	"lendloop/internal/usecase/queries"
	"lendloop/tests/common/builder"
	queriesmock "lendloop/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemQueriesMocks struct {
	items    *queriesmock.MockItemReadStore
	comments *queriesmock.MockCommentReadStore
	bookings *queriesmock.MockBookingReadStore
	users    *queriesmock.MockUserReadStore
}

func newItemQueries(t *testing.T, now time.Time) (queries.ItemQueries, itemQueriesMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := itemQueriesMocks{
		items:    queriesmock.NewMockItemReadStore(ctrl),
		comments: queriesmock.NewMockCommentReadStore(ctrl),
		bookings: queriesmock.NewMockBookingReadStore(ctrl),
		users:    queriesmock.NewMockUserReadStore(ctrl),
	}
	q := queries.NewItemQueries(mocks.items, mocks.comments, mocks.bookings, mocks.users, clock.NewMockClock(now))
	return q, mocks
}

// =============================================================================
// GetByID Tests
// =============================================================================

func TestItemQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	itemRow := builder.NewItemBuilder().BuildListItem()
	comments := []*queries.CommentView{builder.NewCommentBuilder().BuildViewQuery()}
	last := builder.NewBookingBuilder().WithItemID(itemRow.ID).BuildRef()
	next := builder.NewBookingBuilder().WithItemID(itemRow.ID).BuildRef()

	t.Run("owner sees last and next booking", func(t *testing.T) {
		q, mocks := newItemQueries(t, now)
		mocks.items.EXPECT().FindByID(ctx, itemRow.ID).Return(itemRow, nil)
		mocks.comments.EXPECT().ListByItem(ctx, itemRow.ID).Return(comments, nil)
		mocks.bookings.EXPECT().LastForItem(ctx, itemRow.ID, now).Return(last, nil)
		mocks.bookings.EXPECT().NextForItem(ctx, itemRow.ID, now).Return(next, nil)

		view, err := q.GetByID(ctx, itemRow.OwnerID, itemRow.ID)
		require.NoError(t, err)

		assert.Equal(t, itemRow.ID, view.ID)
		assert.Equal(t, comments, view.Comments)
		assert.Equal(t, last, view.LastBooking)
		assert.Equal(t, next, view.NextBooking)
	})

	t.Run("other requester never sees adjacent bookings", func(t *testing.T) {
		q, mocks := newItemQueries(t, now)
		mocks.items.EXPECT().FindByID(ctx, itemRow.ID).Return(itemRow, nil)
		mocks.comments.EXPECT().ListByItem(ctx, itemRow.ID).Return(comments, nil)
		// No LastForItem/NextForItem expectations: the lookups must not run.

		view, err := q.GetByID(ctx, uuid.New(), itemRow.ID)
		require.NoError(t, err)

		assert.Equal(t, comments, view.Comments, "comments are public")
		assert.Nil(t, view.LastBooking)
		assert.Nil(t, view.NextBooking)
	})

	t.Run("owner of item without bookings", func(t *testing.T) {
		q, mocks := newItemQueries(t, now)
		mocks.items.EXPECT().FindByID(ctx, itemRow.ID).Return(itemRow, nil)
		mocks.comments.EXPECT().ListByItem(ctx, itemRow.ID).Return([]*queries.CommentView{}, nil)
		mocks.bookings.EXPECT().LastForItem(ctx, itemRow.ID, now).Return(nil, nil)
		mocks.bookings.EXPECT().NextForItem(ctx, itemRow.ID, now).Return(nil, nil)

		view, err := q.GetByID(ctx, itemRow.OwnerID, itemRow.ID)
		require.NoError(t, err)
		assert.Nil(t, view.LastBooking)
		assert.Nil(t, view.NextBooking)
	})

	t.Run("missing item", func(t *testing.T) {
		q, mocks := newItemQueries(t, now)
		mocks.items.EXPECT().FindByID(ctx, itemRow.ID).Return(nil, infra.NotFoundErr("item not found"))

		_, err := q.GetByID(ctx, itemRow.OwnerID, itemRow.ID)
		require.ErrorIs(t, err, queries.ErrItemNotFound)
	})
}

// =============================================================================
// ListByOwner Tests
// =============================================================================

func TestItemQueries_ListByOwner(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	page := queries.DefaultPage()

	t.Run("aggregates each owned item", func(t *testing.T) {
		first := builder.NewItemBuilder().WithOwnerID(ownerID).BuildListItem()
		second := builder.NewItemBuilder().WithOwnerID(ownerID).BuildListItem()

		q, mocks := newItemQueries(t, now)
		mocks.users.EXPECT().FindByID(ctx, ownerID).Return(&queries.UserView{ID: ownerID}, nil)
		mocks.items.EXPECT().ListByOwner(ctx, ownerID, int32(20), int32(0)).
			Return([]*queries.ItemListItem{first, second}, nil)
		for _, row := range []*queries.ItemListItem{first, second} {
			mocks.comments.EXPECT().ListByItem(ctx, row.ID).Return([]*queries.CommentView{}, nil)
			mocks.bookings.EXPECT().LastForItem(ctx, row.ID, now).Return(nil, nil)
			mocks.bookings.EXPECT().NextForItem(ctx, row.ID, now).Return(nil, nil)
		}

		views, err := q.ListByOwner(ctx, ownerID, page)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, first.ID, views[0].ID)
		assert.Equal(t, second.ID, views[1].ID)
	})

	t.Run("missing owner", func(t *testing.T) {
		q, mocks := newItemQueries(t, now)
		mocks.users.EXPECT().FindByID(ctx, ownerID).Return(nil, infra.NotFoundErr("user not found"))

		_, err := q.ListByOwner(ctx, ownerID, page)
		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}

// =============================================================================
// Search Tests
// =============================================================================

func TestItemQueries_Search(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	page := queries.DefaultPage()

	t.Run("forwards non-blank text", func(t *testing.T) {
		rows := []*queries.ItemListItem{builder.NewItemBuilder().BuildListItem()}

		q, mocks := newItemQueries(t, now)
		mocks.items.EXPECT().Search(ctx, "drill", int32(20), int32(0)).Return(rows, nil)

		actual, err := q.Search(ctx, "drill", page)
		require.NoError(t, err)
		assert.Equal(t, rows, actual)
	})

	t.Run("blank text short-circuits to empty list", func(t *testing.T) {
		q, _ := newItemQueries(t, now)

		actual, err := q.Search(ctx, "   ", page)
		require.NoError(t, err)
		assert.NotNil(t, actual)
		assert.Empty(t, actual)
	})
}
