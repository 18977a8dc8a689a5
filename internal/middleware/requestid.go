package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request identifier on both request and response.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin.Context key the request logger reads the ID from.
	RequestIDKey = "request_id"
)

// RequestIDMiddleware tags every request with an identifier. An inbound
// X-Request-ID from a proxy or the Angular frontend is reused as-is;
// otherwise a fresh UUID is generated. The ID is stored on the context for
// the request logger and echoed back in the response header so a client
// error report can be matched against the structured logs. Registered right
// after Recovery so everything downstream sees it.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
