//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lendloop/internal/domain/booking"
	"lendloop/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryNew(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	factory := booking.NewFactory(clock.NewMockClock(now))

	bookerID := uuid.New()
	item := booking.ItemSpec{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Available: true,
	}

	t.Run("creates waiting booking", func(t *testing.T) {
		entity, err := factory.New(item, bookerID, now.Add(time.Hour), now.Add(2*time.Hour))
		require.NoError(t, err)
		require.NotNil(t, entity)

		assert.NotEqual(t, uuid.Nil, entity.ID())
		assert.Equal(t, booking.StatusWaiting, entity.Status())
		assert.Equal(t, item.ID, entity.ItemID())
		assert.Equal(t, bookerID, entity.BookerID())
		assert.Equal(t, now.Add(time.Hour), entity.Period().Start())
		assert.Equal(t, now.Add(2*time.Hour), entity.Period().End())
	})

	t.Run("unavailable item", func(t *testing.T) {
		unavailable := item
		unavailable.Available = false

		_, err := factory.New(unavailable, bookerID, now.Add(time.Hour), now.Add(2*time.Hour))
		require.ErrorIs(t, err, booking.ErrItemUnavailable)
	})

	t.Run("owner booking own item", func(t *testing.T) {
		_, err := factory.New(item, item.OwnerID, now.Add(time.Hour), now.Add(2*time.Hour))
		require.ErrorIs(t, err, booking.ErrOwnItemBooking)
	})

	t.Run("period check runs before availability", func(t *testing.T) {
		unavailable := item
		unavailable.Available = false

		_, err := factory.New(unavailable, bookerID, now.Add(2*time.Hour), now.Add(time.Hour))
		require.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("availability check runs before ownership", func(t *testing.T) {
		unavailable := item
		unavailable.Available = false

		_, err := factory.New(unavailable, item.OwnerID, now.Add(time.Hour), now.Add(2*time.Hour))
		require.ErrorIs(t, err, booking.ErrItemUnavailable)
	})

	t.Run("distinct ids per booking", func(t *testing.T) {
		first, err := factory.New(item, bookerID, now.Add(time.Hour), now.Add(2*time.Hour))
		require.NoError(t, err)
		second, err := factory.New(item, bookerID, now.Add(time.Hour), now.Add(2*time.Hour))
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}
