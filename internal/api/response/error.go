package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorExtras is the payload of a failed response.
type ErrorExtras struct {
	Message string `json:"message"`
}

// ErrorResponse aborts the request with code and a message envelope.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(
		code,
		NewResponse(
			false,
			code,
			ErrorExtras{Message: message},
		))
}
