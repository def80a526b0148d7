package api

import (
	"errors"
	"net/http"

	"lendloop/internal/domain/request"
	reqdto "lendloop/internal/handler/dto/request"
	resdto "lendloop/internal/handler/dto/response"
	"lendloop/internal/handler/httperr"
	"lendloop/internal/handler/middleware"
	"lendloop/internal/usecase/commands"
	"lendloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemRequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewItemRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *ItemRequestHandler {
	return &ItemRequestHandler{cmds: cmds, q: q}
}

// @Summary Create item request
// @Description Post a wanted-item request
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param request body reqdto.CreateItemRequestRequest true "Create request"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests [post]
func (h *ItemRequestHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), userID, commands.CreateRequestInput{
		Description: req.Description,
	})
	if err != nil {
		h.abortWithRequestError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List own item requests
// @Description List the caller's requests, each with the items answering it
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 404 {object} map[string]string
// @Router /requests [get]
func (h *ItemRequestHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}

	views, err := h.q.ListOwn(c.Request.Context(), userID)
	if err != nil {
		h.abortWithRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(views))
}

// @Summary List others' item requests
// @Description List requests posted by other users, newest first
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param from query int false "Offset (default 0)"
// @Param size query int false "Page size (default 20)"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/all [get]
func (h *ItemRequestHandler) ListOthers(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	page, err := parsePage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", nil)
		return
	}

	views, err := h.q.ListOthers(c.Request.Context(), userID, page)
	if err != nil {
		h.abortWithRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(views))
}

// @Summary Get item request
// @Description Get a request with the items answering it
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *ItemRequestHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, requestID)
	if err != nil {
		h.abortWithRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

func (h *ItemRequestHandler) abortWithRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrUserNotFound), errors.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, queries.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item request not found", nil)
	case errors.Is(err, request.ErrMissingDescription):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Description is required", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
