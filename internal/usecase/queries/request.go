package queries

import (
	"context"

	"lendloop/internal/infra"
	"lendloop/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("item request not found")

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	// ListByRequester returns the user's own requests, newest-first.
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	// ListOthers returns requests posted by other users, newest-first.
	ListOthers(ctx context.Context, requesterID uuid.UUID, limit, offset int32) ([]*RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, requesterID, requestID uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ListOthers(ctx context.Context, requesterID uuid.UUID, page Page) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	items    ItemReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, items ItemReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{
		requests: requests,
		items:    items,
		users:    users,
	}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, requesterID, requestID uuid.UUID) (*RequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	view, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if err := q.attachItems(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	views, err := q.requests.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		if err := q.attachItems(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, requesterID uuid.UUID, page Page) ([]*RequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	views, err := q.requests.ListOthers(ctx, requesterID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		if err := q.attachItems(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := q.users.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, view *RequestView) error {
	items, err := q.items.ListByRequest(ctx, view.ID)
	if err != nil {
		return err
	}
	view.Items = items
	return nil
}
