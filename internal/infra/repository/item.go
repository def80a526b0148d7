package repository

import (
	"context"

	"lendloop/internal/domain/item"
	"lendloop/internal/infra"
	"lendloop/internal/infra/db"
	"lendloop/internal/pkg/pgconv"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemRepository struct{}

func NewItemRepository() shared.ItemRepository {
	return &ItemRepository{}
}

const createItemSQL = `
INSERT INTO items (id, owner_id, name, description, available, request_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *ItemRepository) Create(ctx context.Context, tx db.DBTX, it *item.Item) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createItemSQL,
		pgconv.UUIDToPgtype(it.ID()),
		pgconv.UUIDToPgtype(it.OwnerID()),
		it.Name(),
		it.Description(),
		it.Available(),
		pgconv.UUIDPtrToPgtype(it.RequestID()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}
	return uuid.UUID(id.Bytes), nil
}

const updateItemSQL = `
UPDATE items
SET name = $2, description = $3, available = $4, updated_at = now()
WHERE id = $1
`

func (r *ItemRepository) Update(ctx context.Context, tx db.DBTX, it *item.Item) error {
	tag, err := tx.Exec(ctx, updateItemSQL,
		pgconv.UUIDToPgtype(it.ID()),
		it.Name(),
		it.Description(),
		it.Available(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("item not found")
	}
	return nil
}

const deleteItemSQL = `DELETE FROM items WHERE id = $1`

func (r *ItemRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteItemSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("item not found")
	}
	return nil
}
