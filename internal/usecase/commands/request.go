package commands

import (
	"context"

	domrequest "lendloop/internal/domain/request"
	"lendloop/internal/infra"
	"lendloop/internal/pkg/clock"
	"lendloop/internal/pkg/errs"
	"lendloop/internal/usecase/queries"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRequestInput struct {
	Description string
}

type RequestCommands interface {
	Create(ctx context.Context, requesterID uuid.UUID, in CreateRequestInput) (*queries.RequestView, error)
}

type requestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *requestUseCaseImpl) Create(ctx context.Context, requesterID uuid.UUID, in CreateRequestInput) (*queries.RequestView, error) {
	if _, err := uc.uow.CommandReads().UserByID(ctx, requesterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	entity, err := domrequest.NewItemRequest(requesterID, in.Description, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Requests().Create(ctx, tx.DB(), entity)
		return txErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return &queries.RequestView{
		ID:          entity.ID(),
		Description: entity.Description(),
		RequesterID: entity.RequesterID(),
		Created:     entity.Created(),
		Items:       []*queries.ItemListItem{},
	}, nil
}
