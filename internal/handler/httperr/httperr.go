// Package httperr carries the error envelope shared by the auth middleware
// and the trailing error handler. Handlers that map use-case sentinels to
// status codes inline (bookings, seats, analytics) respond directly; this
// path serves aborts raised from middleware, where the response must travel
// through gin's error list.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error body: {"error": {"message": ...}} plus an
// optional detail payload. Status is for the writer, not the body.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
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
