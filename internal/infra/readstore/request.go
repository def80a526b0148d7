package readstore

import (
	"context"

	"lendloop/internal/infra"
	"lendloop/internal/infra/db"
	"lendloop/internal/pkg/pgconv"
	"lendloop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const requestSelectSQL = `
SELECT id, requester_id, description, created_at
FROM requests
`

func (s *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row := s.db.QueryRow(ctx, requestSelectSQL+` WHERE id = $1`, pgconv.UUIDToPgtype(id))
	view, err := scanRequestRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item request", err)
	}
	return view, nil
}

func (s *RequestReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	return s.list(ctx, requestSelectSQL+` WHERE requester_id = $1 ORDER BY created_at DESC, id DESC`,
		pgconv.UUIDToPgtype(requesterID))
}

func (s *RequestReadStore) ListOthers(ctx context.Context, requesterID uuid.UUID, limit, offset int32) ([]*queries.RequestView, error) {
	return s.list(ctx, requestSelectSQL+` WHERE requester_id <> $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		pgconv.UUIDToPgtype(requesterID), limit, offset)
}

func (s *RequestReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.RequestView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item requests", err)
	}
	defer rows.Close()

	views := make([]*queries.RequestView, 0)
	for rows.Next() {
		view, scanErr := scanRequestRow(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan item request row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item request rows", err)
	}
	return views, nil
}

func scanRequestRow(row rowScanner) (*queries.RequestView, error) {
	var (
		id, requesterID pgtype.UUID
		description     string
		created         pgtype.Timestamptz
	)
	if err := row.Scan(&id, &requesterID, &description, &created); err != nil {
		return nil, err
	}
	return &queries.RequestView{
		ID:          uuid.UUID(id.Bytes),
		RequesterID: uuid.UUID(requesterID.Bytes),
		Description: description,
		Created:     created.Time,
		Items:       []*queries.ItemListItem{},
	}, nil
}
