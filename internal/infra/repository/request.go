package repository

import (
	"context"

	"lendloop/internal/domain/request"
	"lendloop/internal/infra"
	"lendloop/internal/infra/db"
	"lendloop/internal/pkg/pgconv"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestRepository struct{}

func NewRequestRepository() shared.RequestRepository {
	return &RequestRepository{}
}

const createRequestSQL = `
INSERT INTO requests (id, requester_id, description, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`

func (r *RequestRepository) Create(ctx context.Context, tx db.DBTX, req *request.ItemRequest) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createRequestSQL,
		pgconv.UUIDToPgtype(req.ID()),
		pgconv.UUIDToPgtype(req.RequesterID()),
		req.Description(),
		pgconv.TimeToPgtype(req.Created()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item request", err)
	}
	return uuid.UUID(id.Bytes), nil
}
