//go:build unit

package item_test

import (
	"testing"

	"lendloop/internal/domain/item"
	"lendloop/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ItemBuilder)
	errIs  error
}

func TestNewItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Cordless Drill", actual.Name())
		assert.True(t, actual.Available())
		assert.Nil(t, actual.RequestID())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ItemBuilder) { b.WithName("") },
				errIs:  item.ErrMissingName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.ItemBuilder) { b.WithName("   ") },
				errIs:  item.ErrMissingName,
			},
			{
				name:   "empty description",
				mutate: func(b *builder.ItemBuilder) { b.WithDescription("") },
				errIs:  item.ErrMissingDescription,
			},
			{
				name:   "unavailable item is still valid",
				mutate: func(b *builder.ItemBuilder) { b.AsUnavailable() },
			},
			{
				name:   "with request reference",
				mutate: func(b *builder.ItemBuilder) { b.WithRequestID(uuid.New()) },
			},
		})
	})

	t.Run("name trimming", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().WithName("  Drill  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Drill", actual.Name())
	})
}

func TestItemPatch(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		entity, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, entity.Patch(strPtr("Hammer"), nil, nil))
		assert.Equal(t, "Hammer", entity.Name())
		assert.Equal(t, "18V drill with two batteries", entity.Description())
		assert.True(t, entity.Available())
	})

	t.Run("availability toggle", func(t *testing.T) {
		entity, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, entity.Patch(nil, nil, boolPtr(false)))
		assert.False(t, entity.Available())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		entity, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, entity.Patch(strPtr("  "), nil, nil), item.ErrMissingName)
		assert.Equal(t, "Cordless Drill", entity.Name())
	})

	t.Run("blank description rejected", func(t *testing.T) {
		entity, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, entity.Patch(nil, strPtr(""), nil), item.ErrMissingDescription)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewItemBuilder().With(c.mutate).BuildDomain()

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
