// Package httperr is the single error envelope every handler replies with.
// Clients match on error.message verbatim, so handlers pick the message and
// this package only shapes it.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the serialized envelope. Status rides along for the error
// middleware but never reaches the body.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the envelope and aborts the chain. The causing err
// is attached to the gin context as a public error so the logging middleware
// can emit it with the request line; msg is what the client sees.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
