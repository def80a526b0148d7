package api

import (
	"strconv"

	"lendloop/internal/pkg/errs"
	"lendloop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Identity is set by middleware.RequireIdentity; a miss here means a route
// was registered without it.
var errIdentityNotSet = errs.New("identity not set in request context")

func parsePage(c *gin.Context) (queries.Page, error) {
	page := queries.DefaultPage()

	if v := c.Query("from"); v != "" {
		from, err := strconv.Atoi(v)
		if err != nil {
			return queries.Page{}, queries.ErrInvalidPaging
		}
		page.From = from
	}
	if v := c.Query("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return queries.Page{}, queries.ErrInvalidPaging
		}
		page.Size = size
	}

	return queries.NewPage(page.From, page.Size)
}
