//go:build unit

package user_test

import (
	"testing"

	"lendloop/internal/domain/user"
	"lendloop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestNewUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Alice", actual.Name())
		assert.Equal(t, "alice@example.com", actual.Email().String())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  user.ErrMissingName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrMissingName,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "email without at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("alice.example.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "email with display name",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Alice <alice@example.com>") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})
}

func TestUserPatch(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		entity, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, entity.Patch(strPtr("Alicia"), nil))
		assert.Equal(t, "Alicia", entity.Name())
		assert.Equal(t, "alice@example.com", entity.Email().String())
	})

	t.Run("email update", func(t *testing.T) {
		entity, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		email, err := user.NewEmail("alicia@example.com")
		require.NoError(t, err)

		require.NoError(t, entity.Patch(nil, &email))
		assert.Equal(t, "alicia@example.com", entity.Email().String())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		entity, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, entity.Patch(strPtr(" "), nil), user.ErrMissingName)
		assert.Equal(t, "Alice", entity.Name())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
