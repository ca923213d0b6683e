package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every API reply is wrapped in.
type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

// SuccessResponseContent returns a JSON response with a success message and content
func SuccessResponseContent(c *gin.Context, content string) {
	c.JSON(
		http.StatusOK,
		NewResponse(
			true,
			http.StatusOK,
			map[string]any{
				"content": content,
			},
		))
}

// SuccessResponse returns a JSON response with a success message with no type limitation
func SuccessResponse(c *gin.Context, extras any) {
	c.JSON(
		http.StatusOK,
		NewResponse(
			true,
			http.StatusOK,
			extras,
		))
}
