package readstore

import (
	"context"

	"lendloop/internal/infra"
	"lendloop/internal/infra/db"
	"lendloop/internal/pkg/pgconv"
	"lendloop/internal/usecase/queries"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

const itemSelectSQL = `
SELECT id, owner_id, name, description, available, request_id
FROM items
`

func (s *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemListItem, error) {
	row := s.db.QueryRow(ctx, itemSelectSQL+` WHERE id = $1`, pgconv.UUIDToPgtype(id))
	view, err := scanItemRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return view, nil
}

func (s *ItemReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*queries.ItemListItem, error) {
	return s.list(ctx, itemSelectSQL+` WHERE owner_id = $1 ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3`,
		pgconv.UUIDToPgtype(ownerID), limit, offset)
}

// Search matches available items on name or description, case-insensitively.
// The match text is wrapped here so callers pass the raw query string.
const searchItemsSQL = itemSelectSQL + `
WHERE available AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
ORDER BY created_at ASC, id ASC
LIMIT $2 OFFSET $3
`

func (s *ItemReadStore) Search(ctx context.Context, text string, limit, offset int32) ([]*queries.ItemListItem, error) {
	return s.list(ctx, searchItemsSQL, text, limit, offset)
}

func (s *ItemReadStore) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.ItemListItem, error) {
	return s.list(ctx, itemSelectSQL+` WHERE request_id = $1 ORDER BY created_at ASC, id ASC`,
		pgconv.UUIDToPgtype(requestID))
}

const itemSnapshotSQL = `
SELECT id, owner_id, name, description, available, request_id, created_at, updated_at
FROM items
WHERE id = $1
`

// Snapshot is the command-side read; it carries the timestamps the list
// projection leaves out.
func (s *ItemReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	var (
		itemID, ownerID  pgtype.UUID
		requestID        pgtype.UUID
		name, desc       string
		available        bool
		created, updated pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, itemSnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&itemID, &ownerID, &name, &desc, &available, &requestID, &created, &updated)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return &shared.ItemSnapshot{
		ID:          uuid.UUID(itemID.Bytes),
		OwnerID:     uuid.UUID(ownerID.Bytes),
		Name:        name,
		Description: desc,
		Available:   available,
		RequestID:   pgconv.UUIDPtrFromPgtype(requestID),
		CreatedAt:   created.Time,
		UpdatedAt:   updated.Time,
	}, nil
}

func (s *ItemReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.ItemListItem, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	items := make([]*queries.ItemListItem, 0)
	for rows.Next() {
		item, scanErr := scanItemRow(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", scanErr)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return items, nil
}

func scanItemRow(row rowScanner) (*queries.ItemListItem, error) {
	var (
		id, ownerID pgtype.UUID
		requestID   pgtype.UUID
		name, desc  string
		available   bool
	)
	if err := row.Scan(&id, &ownerID, &name, &desc, &available, &requestID); err != nil {
		return nil, err
	}
	return &queries.ItemListItem{
		ID:          uuid.UUID(id.Bytes),
		OwnerID:     uuid.UUID(ownerID.Bytes),
		Name:        name,
		Description: desc,
		Available:   available,
		RequestID:   pgconv.UUIDPtrFromPgtype(requestID),
	}, nil
}
