package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"notes-api/internal/middleware"
	userHTTP "notes-api/internal/user/delivery/http"
	userRepo "notes-api/internal/user/repository/gormdb"
	userUC "notes-api/internal/user/usecase"
)

// setupUserDomain initializes the user domain and registers its routes.
func (srv HTTPServer) setupUserDomain(ctx context.Context, r gin.IRoutes, mw middleware.Middleware) {
	// 1. Repository
	repo := userRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := userUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := userHTTP.New(srv.l, uc)

	// 4. Routes: /signup, /login, /users
	userHTTP.RegisterRoutes(r, h, mw)

	srv.l.Infof(ctx, "User domain registered")
}
