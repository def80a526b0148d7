package user

import (
	"time"

	"github.com/google/uuid"
)

// User identity is immutable once a booking references it; the schema
// enforces that with ON DELETE RESTRICT on booking references.
type User struct {
	id        uuid.UUID
	name      string
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name string, email Email) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Patch applies a partial update; nil fields keep their current value.
func (u *User) Patch(name *string, email *Email) error {
	if name != nil {
		if err := validateName(*name); err != nil {
			return err
		}
		u.name = *name
	}
	if email != nil {
		u.email = *email
	}
	return nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
