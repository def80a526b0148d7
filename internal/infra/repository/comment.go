package repository

import (
	"context"

	"lendloop/internal/domain/comment"
	"lendloop/internal/infra"
	"lendloop/internal/infra/db"
	"lendloop/internal/pkg/pgconv"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CommentRepository struct{}

func NewCommentRepository() shared.CommentRepository {
	return &CommentRepository{}
}

const createCommentSQL = `
INSERT INTO comments (id, item_id, author_id, text, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *CommentRepository) Create(ctx context.Context, tx db.DBTX, c *comment.Comment) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createCommentSQL,
		pgconv.UUIDToPgtype(c.ID()),
		pgconv.UUIDToPgtype(c.ItemID()),
		pgconv.UUIDToPgtype(c.AuthorID()),
		c.Text(),
		pgconv.TimeToPgtype(c.Created()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create comment", err)
	}
	return uuid.UUID(id.Bytes), nil
}
