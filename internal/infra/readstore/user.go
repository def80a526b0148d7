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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDSQL = `
SELECT id, name, email, created_at
FROM users
WHERE id = $1
`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var (
		userID      pgtype.UUID
		name, email string
		created     pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findUserByIDSQL, pgconv.UUIDToPgtype(id)).
		Scan(&userID, &name, &email, &created)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &queries.UserView{
		ID:        uuid.UUID(userID.Bytes),
		Name:      name,
		Email:     email,
		CreatedAt: created.Time,
	}, nil
}

const listUsersSQL = `
SELECT id, name, email, created_at
FROM users
ORDER BY created_at ASC, id ASC
`

func (s *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := s.db.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	users := make([]*queries.UserView, 0)
	for rows.Next() {
		var (
			userID      pgtype.UUID
			name, email string
			created     pgtype.Timestamptz
		)
		if err := rows.Scan(&userID, &name, &email, &created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		users = append(users, &queries.UserView{
			ID:        uuid.UUID(userID.Bytes),
			Name:      name,
			Email:     email,
			CreatedAt: created.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return users, nil
}

const userSnapshotSQL = `
SELECT id, name, email, created_at, updated_at
FROM users
WHERE id = $1
`

func (s *UserReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	var (
		userID           pgtype.UUID
		name, email      string
		created, updated pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, userSnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&userID, &name, &email, &created, &updated)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &shared.UserSnapshot{
		ID:        uuid.UUID(userID.Bytes),
		Name:      name,
		Email:     email,
		CreatedAt: created.Time,
		UpdatedAt: updated.Time,
	}, nil
}
