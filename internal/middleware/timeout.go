package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Timeout bounds the request context. Store calls made with it are cancelled at the deadline.
func (m Middleware) Timeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.requestTimeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), m.requestTimeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
