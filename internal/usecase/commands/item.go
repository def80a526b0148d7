package commands

import (
	"context"

	domitem "lendloop/internal/domain/item"
	"lendloop/internal/infra"
	"lendloop/internal/pkg/errs"
	"lendloop/internal/usecase/queries"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("item request not found")

type CreateItemInput struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type UpdateItemInput struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (*queries.ItemListItem, error)
	// Update applies a partial update; only the owner may change an item.
	Update(ctx context.Context, ownerID, itemID uuid.UUID, in UpdateItemInput) (*queries.ItemListItem, error)
	Delete(ctx context.Context, ownerID, itemID uuid.UUID) error
}

type itemUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewItemCommands(uow shared.UnitOfWork) ItemCommands {
	return &itemUseCaseImpl{uow: uow}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (*queries.ItemListItem, error) {
	reads := uc.uow.CommandReads()

	if _, err := reads.UserByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	entity, err := domitem.NewItem(ownerID, in.Name, in.Description, in.Available, in.RequestID)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, txErr := tx.Items().Create(ctx, tx.DB(), entity)
		return txErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return itemToListItem(entity), nil
}

func (uc *itemUseCaseImpl) Update(ctx context.Context, ownerID, itemID uuid.UUID, in UpdateItemInput) (*queries.ItemListItem, error) {
	var updated *domitem.Item
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().ItemByID(ctx, itemID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return errs.Mark(txErr, ErrStoreFailure)
		}
		if snap.OwnerID != ownerID {
			return ErrNotItemOwner
		}

		entity := domitem.ReconstructItem(
			snap.ID, snap.OwnerID,
			snap.Name, snap.Description, snap.Available, snap.RequestID,
			snap.CreatedAt, snap.UpdatedAt,
		)
		if txErr = entity.Patch(in.Name, in.Description, in.Available); txErr != nil {
			return txErr
		}

		if txErr = tx.Items().Update(ctx, tx.DB(), entity); txErr != nil {
			return errs.Mark(txErr, ErrStoreFailure)
		}
		updated = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return itemToListItem(updated), nil
}

func (uc *itemUseCaseImpl) Delete(ctx context.Context, ownerID, itemID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Reads().ItemByID(ctx, itemID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return errs.Mark(txErr, ErrStoreFailure)
		}
		if snap.OwnerID != ownerID {
			return ErrNotItemOwner
		}
		if txErr = tx.Items().Delete(ctx, tx.DB(), itemID); txErr != nil {
			return errs.Mark(txErr, ErrStoreFailure)
		}
		return nil
	})
}

func itemToListItem(entity *domitem.Item) *queries.ItemListItem {
	return &queries.ItemListItem{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Available:   entity.Available(),
		OwnerID:     entity.OwnerID(),
		RequestID:   entity.RequestID(),
	}
}
