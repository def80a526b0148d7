package repository

import (
	"context"

	"lendloop/internal/domain/user"
	"lendloop/internal/infra"
	"lendloop/internal/infra/db"
	"lendloop/internal/pkg/pgconv"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (id, name, email)
VALUES ($1, $2, $3)
RETURNING id
`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createUserSQL,
		pgconv.UUIDToPgtype(u.ID()),
		u.Name(),
		u.Email().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return uuid.UUID(id.Bytes), nil
}

const updateUserSQL = `
UPDATE users
SET name = $2, email = $3, updated_at = now()
WHERE id = $1
`

func (r *UserRepository) Update(ctx context.Context, tx db.DBTX, u *user.User) error {
	tag, err := tx.Exec(ctx, updateUserSQL,
		pgconv.UUIDToPgtype(u.ID()),
		u.Name(),
		u.Email().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("user not found")
	}
	return nil
}

const deleteUserSQL = `DELETE FROM users WHERE id = $1`

func (r *UserRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteUserSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("user not found")
	}
	return nil
}
