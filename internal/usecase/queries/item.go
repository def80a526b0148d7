package queries

import (
	"context"
	"strings"

	"lendloop/internal/infra"
	"lendloop/internal/pkg/clock"
	"lendloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemListItem, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*ItemListItem, error)
	// Search matches available items whose name or description contains the
	// text, case-insensitively.
	Search(ctx context.Context, text string, limit, offset int32) ([]*ItemListItem, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*ItemListItem, error)
}

type CommentReadStore interface {
	// ListByItem returns the item's comments newest-first.
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*CommentView, error)
}

type ItemQueries interface {
	// GetByID assembles the item view: comments for everyone, last/next
	// booking for the owner only. The privacy rule hides the adjacent
	// bookings from other requesters even though they exist.
	GetByID(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemView, error)
	// ListByOwner repeats the per-item aggregation over the owner's items,
	// paginated at the item level.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemView, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemListItem, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	comments CommentReadStore
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, comments CommentReadStore, bookings BookingReadStore, users UserReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items:    items,
		comments: comments,
		bookings: bookings,
		users:    users,
		clock:    clk,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemView, error) {
	row, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return q.assemble(ctx, requesterID, row)
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemView, error) {
	if _, err := q.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	rows, err := q.items.ListByOwner(ctx, ownerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	views := make([]*ItemView, 0, len(rows))
	for _, row := range rows {
		view, err := q.assemble(ctx, ownerID, row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, page Page) ([]*ItemListItem, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemListItem{}, nil
	}
	return q.items.Search(ctx, text, page.Limit(), page.Offset())
}

func (q *itemQueriesImpl) assemble(ctx context.Context, requesterID uuid.UUID, row *ItemListItem) (*ItemView, error) {
	comments, err := q.comments.ListByItem(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	view := &ItemView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		OwnerID:     row.OwnerID,
		RequestID:   row.RequestID,
		Comments:    comments,
	}

	if requesterID != row.OwnerID {
		return view, nil
	}

	now := q.clock.Now()
	last, err := q.bookings.LastForItem(ctx, row.ID, now)
	if err != nil {
		return nil, err
	}
	next, err := q.bookings.NextForItem(ctx, row.ID, now)
	if err != nil {
		return nil, err
	}
	view.LastBooking = last
	view.NextBooking = next
	return view, nil
}
