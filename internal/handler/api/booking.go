package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lendloop/internal/domain/booking"
	reqdto "lendloop/internal/handler/dto/request"
	resdto "lendloop/internal/handler/dto/response"
	"lendloop/internal/handler/httperr"
	"lendloop/internal/handler/middleware"
	"lendloop/internal/usecase/commands"
	"lendloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book an item for a period; the booking starts in WAITING state
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), userID, commands.CreateBookingInput{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		h.abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Decide booking
// @Description Approve or reject a waiting booking; item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param id path string true "Booking ID"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter approved must be true or false", nil)
		return
	}

	view, err := h.cmds.Decide(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		h.abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID; visible to the booker and the item owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		h.abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings as renter
// @Description List the caller's bookings filtered by a temporal view
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param state query string false "ALL | CURRENT | PAST | FUTURE | WAITING | REJECTED (default ALL)"
// @Param from query int false "Offset (default 0)"
// @Param size query int false "Page size (default 20)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	h.list(c, h.q.ListByBooker)
}

// @Summary List bookings as owner
// @Description List bookings for the caller's items filtered by a temporal view
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param state query string false "ALL | CURRENT | PAST | FUTURE | WAITING | REJECTED (default ALL)"
// @Param from query int false "Offset (default 0)"
// @Param size query int false "Page size (default 20)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	h.list(c, h.q.ListByOwner)
}

type bookingListQuery func(ctx context.Context, userID uuid.UUID, state string, page queries.Page) ([]*queries.BookingView, error)

func (h *BookingHandler) list(c *gin.Context, query bookingListQuery) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}

	state := c.DefaultQuery("state", booking.StateAll.String())
	page, err := parsePage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", nil)
		return
	}

	views, err := query(c.Request.Context(), userID, state, page)
	if err != nil {
		if errors.Is(err, booking.ErrUnknownState) {
			// Clients match on this message; the offending token must be echoed.
			httperr.AbortWithError(c, http.StatusBadRequest, err, fmt.Sprintf("Unknown state: %s", state), nil)
			return
		}
		h.abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}

func (h *BookingHandler) abortWithBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrUserNotFound), errors.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, commands.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, queries.ErrBookingNotFound), errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, queries.ErrBookingAccessDenied):
		// Hidden rather than forbidden; outsiders learn nothing.
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrNotItemOwner):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, booking.ErrOwnItemBooking):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, booking.ErrInvalidRange),
		errors.Is(err, booking.ErrEndInPast),
		errors.Is(err, booking.ErrStartInPast):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking period", nil)
	case errors.Is(err, booking.ErrItemUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available", nil)
	case errors.Is(err, booking.ErrAlreadyApproved),
		errors.Is(err, booking.ErrAlreadyRejected):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking already decided", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
