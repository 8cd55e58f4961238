package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MessageSuccess = "Success"
	MessageFailed  = "Failed"
)

// OK writes a 200 response wrapping data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Unavailable writes a 503 response with the failing dependency details.
func Unavailable(c *gin.Context, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   MessageFailed,
		Errors:    data,
	})
}
