package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backoffice-dashboard/pkg/log"
	"backoffice-dashboard/pkg/restapi"
)

// RequestID tags the request context with the incoming X-Request-ID or a fresh uuid.
// The id is echoed in the response and forwarded to the backoffice API.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(restapi.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(restapi.HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
