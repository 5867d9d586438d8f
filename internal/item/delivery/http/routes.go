package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notes-api/internal/middleware"
)

// RegisterRoutes maps the item endpoints. Items live under /tables.
func RegisterRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.POST("/create", h.Create)
	r.OPTIONS("/create", mw.Preflight(http.MethodPost))

	r.GET("/tables", h.List)
	r.GET("/tables/:id", h.Detail)
	r.PUT("/tables/:id", h.Update)
	r.DELETE("/tables/:id", h.Delete)
	r.OPTIONS("/tables/:id", mw.Preflight(http.MethodPut, http.MethodDelete))
}
