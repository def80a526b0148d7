//go:build unit

package booking_test

import (
	"testing"

	"lendloop/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	valid := []string{"ALL", "CURRENT", "PAST", "FUTURE", "WAITING", "REJECTED"}
	for _, text := range valid {
		t.Run(text, func(t *testing.T) {
			state, err := booking.ParseState(text)
			require.NoError(t, err)
			assert.Equal(t, text, state.String())
		})
	}

	invalid := []string{"", "all", "Current", "UNSUPPORTED_STATUS", "CANCELED", "APPROVED"}
	for _, text := range invalid {
		t.Run("rejects "+text, func(t *testing.T) {
			_, err := booking.ParseState(text)
			require.ErrorIs(t, err, booking.ErrUnknownState)
			if text != "" {
				assert.Contains(t, err.Error(), text)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		for _, s := range []booking.Status{
			booking.StatusWaiting,
			booking.StatusApproved,
			booking.StatusRejected,
			booking.StatusCanceled,
		} {
			assert.True(t, s.IsValid(), s.String())
		}
		assert.False(t, booking.Status("PENDING").IsValid())
	})

	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, booking.StatusWaiting.IsTerminal())
		assert.True(t, booking.StatusApproved.IsTerminal())
		assert.True(t, booking.StatusRejected.IsTerminal())
		assert.False(t, booking.StatusCanceled.IsTerminal())
	})
}
