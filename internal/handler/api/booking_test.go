//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"lendloop/internal/domain/booking"
	"lendloop/internal/handler/api"
	resdto "lendloop/internal/handler/dto/response"
	"lendloop/internal/handler/middleware"
	"lendloop/internal/usecase/commands"
	"lendloop/internal/usecase/queries"
	"lendloop/tests/common/builder"
	"lendloop/tests/common/httptest"
	"lendloop/tests/common/testutil"
	commandsmock "lendloop/tests/mock/commands"
	queriesmock "lendloop/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// The real identity middleware runs in tests; PerformRequest fills the
	// X-Sharer-User-Id header from its userID argument.
	identity := middleware.RequireIdentity()

	s.router.POST("/bookings", identity, s.handler.Create)
	s.router.PATCH("/bookings/:id", identity, s.handler.Decide)
	s.router.GET("/bookings", identity, s.handler.ListByBooker)
	s.router.GET("/bookings/owner", identity, s.handler.ListByOwner)
	s.router.GET("/bookings/:id", identity, s.handler.Get)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	bookerID := uuid.New()

	b := builder.NewBookingBuilder().WithBookerID(bookerID)
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildViewQuery()

	s.Run("success: returns 201 Created with the waiting booking", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), bookerID, commands.CreateBookingInput{
				ItemID: reqBody.ItemID,
				Start:  reqBody.Start,
				End:    reqBody.End,
			}).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bookerID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("WAITING", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil)},
			{name: "missing field: start (required)", mutate: testutil.Field("start", nil)},
			{name: "missing field: end (required)", mutate: testutil.Field("end", nil)},
			{name: "malformed itemId", mutate: testutil.Field("itemId", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, bookerID.String())
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request without identity header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Sharer-User-Id header required")
	})

	s.Run("error: 400 Bad Request for malformed identity header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid X-Sharer-User-Id header")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booker not found",
				commandsError:  commands.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "item not found",
				commandsError:  commands.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "own item hidden as missing",
				commandsError:  booking.ErrOwnItemBooking,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "inverted period",
				commandsError:  booking.ErrInvalidRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking period",
			},
			{
				name:           "period in the past",
				commandsError:  booking.ErrEndInPast,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking period",
			},
			{
				name:           "item unavailable",
				commandsError:  booking.ErrItemUnavailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Item is not available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), bookerID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bookerID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	bookingID := uuid.New()
	ownerID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: approves with approved=true", func() {
		returnView := builder.NewBookingBuilder().AsApproved().BuildViewQuery()
		s.mockCommands.EXPECT().Decide(gomock.Any(), ownerID, bookingID, true).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, ownerID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("APPROVED", response.Status)
	})

	s.Run("success: rejects with approved=false", func() {
		returnView := builder.NewBookingBuilder().AsRejected().BuildViewQuery()
		s.mockCommands.EXPECT().Decide(gomock.Any(), ownerID, bookingID, false).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, ownerID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("REJECTED", response.Status)
	})

	s.Run("error: 400 Bad Request for missing or malformed approved", func() {
		for _, suffix := range []string{"", "?approved=maybe"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+suffix, nil, ownerID.String())
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "approved must be true or false")
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/invalid-uuid?approved=true", nil, ownerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "caller is not the owner, hidden as missing",
				commandsError:  commands.ErrNotItemOwner,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "already approved",
				commandsError:  booking.ErrAlreadyApproved,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Booking already decided",
			},
			{
				name:           "already rejected",
				commandsError:  booking.ErrAlreadyRejected,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Booking already decided",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Decide(gomock.Any(), ownerID, bookingID, true).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, ownerID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	requesterID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		returnView := builder.NewBookingBuilder().BuildViewQuery()
		returnView.ID = bookingID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), requesterID, bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, requesterID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.Item.ID, response.Item.ID)
		s.Equal(returnView.Booker.ID, response.Booker.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, requesterID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: outsider access is masked as 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), requesterID, bookingID).
			Return(nil, queries.ErrBookingAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, requesterID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), requesterID, bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, requesterID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListByBooker / TestListByOwner
// ================================================================================

func (s *BookingHandlerTestSuite) TestListByBooker() {
	userID := uuid.New()
	url := "/bookings"

	views := []*queries.BookingView{builder.NewBookingBuilder().WithBookerID(userID).BuildViewQuery()}

	s.Run("success: defaults to state ALL and default paging", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), userID, "ALL", queries.DefaultPage()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, userID.String())

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: forwards state and paging parameters", func() {
		page := queries.Page{From: 5, Size: 10}
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), userID, "WAITING", page).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?state=WAITING&from=5&size=10", nil, userID.String())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown state token echoes the token back", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), userID, "UNSUPPORTED_STATUS", queries.DefaultPage()).
			Return(nil, booking.ErrUnknownState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?state=UNSUPPORTED_STATUS", nil, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state: UNSUPPORTED_STATUS")
	})

	s.Run("error: 400 Bad Request for malformed paging", func() {
		for _, suffix := range []string{"?from=abc", "?size=0", "?from=-1"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+suffix, nil, userID.String())
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid paging parameters")
		}
	})

	s.Run("error: 404 Not Found for missing user", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), userID, "ALL", queries.DefaultPage()).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, userID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

func (s *BookingHandlerTestSuite) TestListByOwner() {
	ownerID := uuid.New()
	url := "/bookings/owner"

	views := []*queries.BookingView{builder.NewBookingBuilder().WithOwnerID(ownerID).BuildViewQuery()}

	s.Run("success: lists bookings for the caller's items", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), ownerID, "ALL", queries.DefaultPage()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, ownerID.String())

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: forwards the state filter", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), ownerID, "PAST", queries.DefaultPage()).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?state=PAST", nil, ownerID.String())

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}
