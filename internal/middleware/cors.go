package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"notes-api/pkg/response"
)

const (
	headerAllowOrigin      = "Access-Control-Allow-Origin"
	headerAllowCredentials = "Access-Control-Allow-Credentials"
	headerAllowHeaders     = "Access-Control-Allow-Headers"
	headerAllowMethods     = "Access-Control-Allow-Methods"
)

// CORS stamps the configured origin on every response.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(headerAllowOrigin, m.allowedOrigin)
		c.Header(headerAllowCredentials, "true")
		c.Next()
	}
}

// Preflight answers an OPTIONS request for a route that accepts methods.
func (m Middleware) Preflight(methods ...string) gin.HandlerFunc {
	allow := strings.Join(append(append([]string{}, methods...), "OPTIONS"), ", ")
	return func(c *gin.Context) {
		c.Header(headerAllowOrigin, m.allowedOrigin)
		c.Header(headerAllowCredentials, "true")
		c.Header(headerAllowHeaders, "Content-Type")
		c.Header(headerAllowMethods, allow)
		response.Preflight(c)
	}
}
