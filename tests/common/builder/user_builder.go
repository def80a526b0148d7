//go:build unit || e2e

package builder

import (
	"time"

	domuser "lendloop/internal/domain/user"
	reqdto "lendloop/internal/handler/dto/request"
	"lendloop/internal/usecase/queries"
	"lendloop/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewUserBuilder() *UserBuilder {
	now := time.Now().Truncate(time.Second)
	return &UserBuilder{
		ID:        uuid.New(),
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(b.Name, email)
}

func (b *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:  b.Name,
		Email: b.Email,
	}
}

func (b *UserBuilder) BuildUpdateRequestDTO() reqdto.UpdateUserRequest {
	name := b.Name
	email := b.Email
	return reqdto.UpdateUserRequest{
		Name:  &name,
		Email: &email,
	}
}

func (b *UserBuilder) BuildViewQuery() *queries.UserView {
	return &queries.UserView{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
	}
}

func (b *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}
