package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request a UUID (honoring an inbound
// X-Request-ID) and echoes it on the response. Error envelopes pick it
// up from the context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from gin context.
func GetRequestID(c *gin.Context) string {
	return c.GetString("request_id")
}
