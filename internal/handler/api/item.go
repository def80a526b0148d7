package api

import (
	"errors"
	"net/http"

	"lendloop/internal/domain/comment"
	"lendloop/internal/domain/item"
	reqdto "lendloop/internal/handler/dto/request"
	resdto "lendloop/internal/handler/dto/response"
	"lendloop/internal/handler/httperr"
	"lendloop/internal/handler/middleware"
	"lendloop/internal/usecase/commands"
	"lendloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	cmds     commands.ItemCommands
	comments commands.CommentCommands
	q        queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, comments commands.CommentCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, comments: comments, q: q}
}

// @Summary Create item
// @Description Register an item owned by the caller
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	available := req.Available != nil && *req.Available
	view, err := h.cmds.Create(c.Request.Context(), userID, commands.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		h.abortWithItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemListItem(view))
}

// @Summary Update item
// @Description Partially update an item; owner only
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Update item request"
// @Success 200 {object} resdto.ItemListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), userID, itemID, commands.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		h.abortWithItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemListItem(view))
}

// @Summary Get item
// @Description Get an item with comments; the owner also sees last/next booking
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, itemID)
	if err != nil {
		h.abortWithItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List own items
// @Description List the caller's items with the owner aggregation
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param from query int false "Offset (default 0)"
// @Param size query int false "Page size (default 20)"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
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

	views, err := h.q.ListByOwner(c.Request.Context(), userID, page)
	if err != nil {
		h.abortWithItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViewList(views))
}

// @Summary Search items
// @Description Search available items by name or description substring
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param text query string true "Search text; blank returns an empty list"
// @Param from query int false "Offset (default 0)"
// @Param size query int false "Page size (default 20)"
// @Success 200 {array} resdto.ItemListResponse
// @Failure 400 {object} map[string]string
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", nil)
		return
	}

	rows, err := h.q.Search(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		h.abortWithItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemList(rows))
}

// @Summary Delete item
// @Description Delete an item; owner only
// @Tags items
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), userID, itemID); err != nil {
		h.abortWithItemError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Comment on item
// @Description Add a comment; only a renter whose booking has finished may comment
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Create comment request"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/comment [post]
func (h *ItemHandler) CreateComment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityNotSet, "Internal server error", nil)
		return
	}
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item id", nil)
		return
	}
	var req reqdto.CreateCommentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.comments.Create(c.Request.Context(), userID, itemID, req.Text)
	if err != nil {
		h.abortWithItemError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}

func (h *ItemHandler) abortWithItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrUserNotFound), errors.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, queries.ErrItemNotFound), errors.Is(err, commands.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, commands.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item request not found", nil)
	case errors.Is(err, commands.ErrNotItemOwner):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, item.ErrMissingName), errors.Is(err, item.ErrMissingDescription):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item fields", nil)
	case errors.Is(err, comment.ErrEmptyComment):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Comment text is required", nil)
	case errors.Is(err, comment.ErrNoFinishedBooking):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No finished booking for this item", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
