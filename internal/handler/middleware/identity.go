package middleware

import (
	"net/http"

	"lendloop/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IdentityHeader carries the caller's user id, set by the gateway in front
// of this service. There is no credential check here; the gateway owns
// authentication and this service trusts the header.
const IdentityHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(IdentityHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingIdentity, "X-Sharer-User-Id header required", nil)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid X-Sharer-User-Id header", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

var errMissingIdentity = &missingIdentityError{}

type missingIdentityError struct{}

func (*missingIdentityError) Error() string { return "identity header missing" }

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
