package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notes-api/internal/middleware"
)

// RegisterRoutes maps the account endpoints. Mutating paths also answer CORS preflight.
func RegisterRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.POST("/signup", h.Signup)
	r.OPTIONS("/signup", mw.Preflight(http.MethodPost))

	r.POST("/login", h.Login)
	r.OPTIONS("/login", mw.Preflight(http.MethodPost))

	r.GET("/users", h.List)
	r.GET("/users/:id", h.Detail)
	r.DELETE("/users/:id", h.Delete)
	r.OPTIONS("/users/:id", mw.Preflight(http.MethodDelete))
}
