package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MessageSuccess  = "Success"
	UnavailableCode = 503
	DateTimeFormat  = "2006-01-02 15:04:05"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Unavailable sends 503 when a dependency of the service cannot be reached.
func Unavailable(c *gin.Context, err error, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: UnavailableCode,
		Message:   err.Error(),
		Data:      data,
	})
}
