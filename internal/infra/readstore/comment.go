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

type CommentReadStore struct {
	db db.DBTX
}

func NewCommentReadStore(dbtx db.DBTX) *CommentReadStore {
	return &CommentReadStore{db: dbtx}
}

const listCommentsByItemSQL = `
SELECT c.id, c.text, u.name, c.created_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.item_id = $1
ORDER BY c.created_at DESC, c.id DESC
`

func (s *CommentReadStore) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*queries.CommentView, error) {
	rows, err := s.db.Query(ctx, listCommentsByItemSQL, pgconv.UUIDToPgtype(itemID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	comments := make([]*queries.CommentView, 0)
	for rows.Next() {
		var (
			id         pgtype.UUID
			text, name string
			created    pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &text, &name, &created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		comments = append(comments, &queries.CommentView{
			ID:         uuid.UUID(id.Bytes),
			Text:       text,
			AuthorName: name,
			Created:    created.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return comments, nil
}
