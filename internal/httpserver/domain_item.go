package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "notes-api/internal/item/delivery/http"
	itemRepo "notes-api/internal/item/repository/gormdb"
	itemUC "notes-api/internal/item/usecase"
	"notes-api/internal/middleware"
)

// setupItemDomain initializes the item domain and registers its routes.
func (srv HTTPServer) setupItemDomain(ctx context.Context, r gin.IRoutes, mw middleware.Middleware) {
	// 1. Repository
	repo := itemRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := itemUC.New(repo, srv.l, srv.service.RequireOwnerOnCreate)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc)

	// 4. Routes: /create, /tables
	itemHTTP.RegisterRoutes(r, h, mw)

	srv.l.Infof(ctx, "Item domain registered (owner required: %t)", srv.service.RequireOwnerOnCreate)
}
