//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"lendloop/internal/handler/dto/request"
	"lendloop/internal/handler/dto/response"
	"lendloop/internal/infra/readstore"
	"lendloop/tests/common/dbtest"
	"lendloop/tests/common/httptest"
	"lendloop/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL      = "/api/bookings"
	ownerBookingsURL = "/api/bookings/owner"
	itemsURL         = "/api/items"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// =============================================================================
// TestBookingLifecycle - create, decide and fetch through the real stack
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: booking starts waiting and the owner approves it", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		now := time.Now()
		reqBody := request.CreateBookingRequest{
			ItemID: itemID,
			Start:  now.Add(24 * time.Hour),
			End:    now.Add(48 * time.Hour),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bookerID.String())
		require.Equal(t, http.StatusCreated, w.Code, "should create booking")

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "WAITING", created.Status)
		require.Equal(t, itemID, created.Item.ID)
		require.Equal(t, bookerID, created.Booker.ID)

		decideURL := fmt.Sprintf("%s/%s?approved=true", bookingsURL, created.ID)
		dw := httptest.PerformRequest(t, s.Router, http.MethodPatch, decideURL, nil, ownerID.String())
		require.Equal(t, http.StatusOK, dw.Code, "owner should approve")

		var decided response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &decided))
		require.Equal(t, "APPROVED", decided.Status)

		// Both parties can read the booking; an outsider cannot.
		for _, requester := range []uuid.UUID{bookerID, ownerID} {
			gw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, requester.String())
			require.Equal(t, http.StatusOK, gw.Code)
		}
		outsiderID := dbtest.CreateTestUser(t, s.DB, "Outsider", "outsider@example.com")
		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, outsiderID.String())
		require.Equal(t, http.StatusNotFound, ow.Code, "outsiders see nothing")
	})

	s.Run("Normal case: the opposite decision flips a decided booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Tent", true)

		now := time.Now()
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(24*time.Hour), now.Add(48*time.Hour), "APPROVED")

		// Rejecting an approved booking is allowed; repeating the same
		// decision is not.
		rejectURL := fmt.Sprintf("%s/%s?approved=false", bookingsURL, bookingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, rejectURL, nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var decided response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &decided))
		require.Equal(t, "REJECTED", decided.Status)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPatch, rejectURL, nil, ownerID.String())
		require.Equal(t, http.StatusBadRequest, w2.Code, "repeating the decision fails")
	})

	s.Run("Error case: booker cannot decide the booking", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Ladder", true)

		now := time.Now()
		bookingID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(24*time.Hour), now.Add(48*time.Hour), "WAITING")

		decideURL := fmt.Sprintf("%s/%s?approved=true", bookingsURL, bookingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, decideURL, nil, bookerID.String())
		require.Equal(t, http.StatusNotFound, w.Code, "ownership failure is hidden as 404")
	})

	s.Run("Error case: owner cannot book their own item", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Projector", true)

		now := time.Now()
		reqBody := request.CreateBookingRequest{
			ItemID: itemID,
			Start:  now.Add(24 * time.Hour),
			End:    now.Add(48 * time.Hour),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, ownerID.String())
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Normal case: overlapping requests for one item can coexist", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		firstID := dbtest.CreateTestUser(t, s.DB, "First", "first@example.com")
		secondID := dbtest.CreateTestUser(t, s.DB, "Second", "second@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Canoe", true)

		// Availability is a static flag, not a live overlap check, so two
		// competing requests for the same window both start waiting.
		now := time.Now()
		reqBody := request.CreateBookingRequest{
			ItemID: itemID,
			Start:  now.Add(24 * time.Hour),
			End:    now.Add(48 * time.Hour),
		}

		for _, booker := range []uuid.UUID{firstID, secondID} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, booker.String())
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerBookingsURL+"?state=WAITING", nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var views []response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &views))
		require.Len(t, views, 2)
	})

	s.Run("Error case: unavailable item cannot be booked", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Broken Mower", false)

		now := time.Now()
		reqBody := request.CreateBookingRequest{
			ItemID: itemID,
			Start:  now.Add(24 * time.Hour),
			End:    now.Add(48 * time.Hour),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, bookerID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestBookingLists - temporal state filters from both vantage points
// =============================================================================

func (s *BookingSuite) TestBookingLists() {
	s.Run("Normal case: state filters classify bookings", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		now := time.Now()
		pastID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")
		currentID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-1*time.Hour), now.Add(1*time.Hour), "APPROVED")
		futureID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(24*time.Hour), now.Add(48*time.Hour), "WAITING")
		rejectedID := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(72*time.Hour), now.Add(96*time.Hour), "REJECTED")

		testCases := []struct {
			state     string
			expectIDs []uuid.UUID
		}{
			{state: "ALL", expectIDs: []uuid.UUID{pastID, currentID, futureID, rejectedID}},
			{state: "PAST", expectIDs: []uuid.UUID{pastID}},
			{state: "CURRENT", expectIDs: []uuid.UUID{currentID}},
			{state: "FUTURE", expectIDs: []uuid.UUID{futureID, rejectedID}},
			{state: "WAITING", expectIDs: []uuid.UUID{futureID}},
			{state: "REJECTED", expectIDs: []uuid.UUID{rejectedID}},
		}

		for _, tc := range testCases {
			for _, url := range []string{bookingsURL, ownerBookingsURL} {
				requester := bookerID
				if url == ownerBookingsURL {
					requester = ownerID
				}

				w := httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?state="+tc.state, nil, requester.String())
				require.Equal(t, http.StatusOK, w.Code, "state %s via %s", tc.state, url)

				var views []response.BookingResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &views))

				got := make([]uuid.UUID, len(views))
				for i, v := range views {
					got[i] = v.ID
				}
				require.ElementsMatch(t, tc.expectIDs, got, "state %s via %s", tc.state, url)
			}
		}
	})

	s.Run("Normal case: CURRENT excludes bookings on their period bounds", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		// Pin the instant ourselves; the read store takes now as an argument.
		// Truncate to microseconds so the stored timestamptz compares equal.
		now := time.Now().UTC().Truncate(time.Microsecond)
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now, now.Add(2*time.Hour), "APPROVED")

		store := readstore.NewBookingReadStore(s.DB)

		// At the exact start instant the booking is still future.
		atStart, err := store.CurrentByBooker(context.Background(), bookerID, now, 20, 0)
		require.NoError(t, err)
		require.Empty(t, atStart, "start == now is not in progress")

		ownerAtStart, err := store.CurrentByOwner(context.Background(), ownerID, now, 20, 0)
		require.NoError(t, err)
		require.Empty(t, ownerAtStart)

		// One tick later it is current from both vantage points.
		later := now.Add(time.Minute)
		inside, err := store.CurrentByBooker(context.Background(), bookerID, later, 20, 0)
		require.NoError(t, err)
		require.Len(t, inside, 1)

		ownerInside, err := store.CurrentByOwner(context.Background(), ownerID, later, 20, 0)
		require.NoError(t, err)
		require.Len(t, ownerInside, 1)

		// At the exact end instant the booking has already left CURRENT.
		atEnd, err := store.CurrentByBooker(context.Background(), bookerID, now.Add(2*time.Hour), 20, 0)
		require.NoError(t, err)
		require.Empty(t, atEnd, "end == now is not in progress")
	})

	s.Run("Error case: unknown state echoes the token", func() {
		t := s.T()

		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?state=UNSUPPORTED_STATUS", nil, bookerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Unknown state: UNSUPPORTED_STATUS")
	})

	s.Run("Error case: missing identity header", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestCommentGate - commenting requires a finished booking
// =============================================================================

func (s *BookingSuite) TestCommentGate() {
	s.Run("Normal case: past booker comments and the comment is public", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")

		commentURL := fmt.Sprintf("%s/%s/comment", itemsURL, itemID)
		reqBody := request.CreateCommentRequest{Text: "Worked great, thanks!"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, reqBody, bookerID.String())
		require.Equal(t, http.StatusCreated, w.Code)

		var comment response.CommentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &comment))

		expected := &response.CommentResponse{
			Text:       "Worked great, thanks!",
			AuthorName: "Booker",
		}
		opts := cmpopts.IgnoreFields(response.CommentResponse{}, "ID", "Created")
		if diff := cmp.Diff(expected, &comment, opts); diff != "" {
			t.Errorf("Comment response mismatch (-want +got):\n%s", diff)
		}

		// Any user sees the comment on the item; only the owner sees the
		// booking references.
		outsiderID := dbtest.CreateTestUser(t, s.DB, "Outsider", "outsider@example.com")
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/"+itemID.String(), nil, outsiderID.String())
		require.Equal(t, http.StatusOK, gw.Code)

		var itemView response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &itemView))
		require.Len(t, itemView.Comments, 1)
		require.Nil(t, itemView.LastBooking)
		require.Nil(t, itemView.NextBooking)

		ogw := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"/"+itemID.String(), nil, ownerID.String())
		require.Equal(t, http.StatusOK, ogw.Code)

		var ownerView response.ItemResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ogw.Body, &ownerView))
		require.NotNil(t, ownerView.LastBooking)
		require.Equal(t, bookerID, ownerView.LastBooking.BookerID)
	})

	s.Run("Error case: no finished booking means no comment", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		now := time.Now()
		// The booking exists but has not finished yet.
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-1*time.Hour), now.Add(1*time.Hour), "APPROVED")

		commentURL := fmt.Sprintf("%s/%s/comment", itemsURL, itemID)
		reqBody := request.CreateCommentRequest{Text: "Too early"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, reqBody, bookerID.String())
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "No finished booking for this item")
	})

	s.Run("Normal case: a rejected but finished booking still allows comments", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
		bookerID := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
		itemID := dbtest.CreateTestItem(t, s.DB, ownerID, "Cordless Drill", true)

		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "REJECTED")

		commentURL := fmt.Sprintf("%s/%s/comment", itemsURL, itemID)
		reqBody := request.CreateCommentRequest{Text: "Never got it, but the owner was responsive"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, commentURL, reqBody, bookerID.String())
		require.Equal(t, http.StatusCreated, w.Code, "eligibility ignores booking status")
	})
}
