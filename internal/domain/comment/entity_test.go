//go:build unit

package comment_test

import (
	"testing"
	"time"

	"lendloop/internal/domain/comment"
	"lendloop/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker records the input it was asked about and answers with a fixed
// error.
type stubChecker struct {
	err   error
	input comment.EligibilityInput
	calls int
}

func (s *stubChecker) CanComment(input comment.EligibilityInput) error {
	s.calls++
	s.input = input
	return s.err
}

func TestNewComment(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	authorID := uuid.New()
	itemID := uuid.New()

	newServices := func(err error) (*comment.Services, *stubChecker) {
		checker := &stubChecker{err: err}
		return &comment.Services{
			Clock:       clock.NewMockClock(now),
			Eligibility: checker,
		}, checker
	}

	t.Run("creates comment with trimmed text", func(t *testing.T) {
		services, checker := newServices(nil)

		actual, err := comment.NewComment(services, authorID, itemID, "  Worked great  ")
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Worked great", actual.Text())
		assert.Equal(t, authorID, actual.AuthorID())
		assert.Equal(t, itemID, actual.ItemID())
		assert.Equal(t, now, actual.Created())

		require.Equal(t, 1, checker.calls)
		assert.Equal(t, authorID, checker.input.AuthorID)
		assert.Equal(t, itemID, checker.input.ItemID)
		assert.Equal(t, now, checker.input.Now)
	})

	t.Run("empty text fails before eligibility", func(t *testing.T) {
		services, checker := newServices(comment.ErrNoFinishedBooking)

		_, err := comment.NewComment(services, authorID, itemID, "   ")
		require.ErrorIs(t, err, comment.ErrEmptyComment)
		assert.Zero(t, checker.calls, "eligibility must not run for empty text")
	})

	t.Run("ineligible author", func(t *testing.T) {
		services, _ := newServices(comment.ErrNoFinishedBooking)

		_, err := comment.NewComment(services, authorID, itemID, "Nice item")
		require.ErrorIs(t, err, comment.ErrNoFinishedBooking)
	})
}
