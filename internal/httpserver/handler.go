package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"notes-api/internal/middleware"
	"notes-api/pkg/response"
)

// RootMessage is the plain-text body of GET /.
const RootMessage = "Server is up and running!"

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.service.AllowedOrigin, srv.requestTimeout)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(
		gin.Recovery(),
		mw.RequestID(),
		mw.Logger(),
		mw.CORS(),
		mw.Timeout(),
	)

	srv.l.Infof(context.Background(), "CORS origin: %s (environment: %s)", srv.service.AllowedOrigin, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootCheck)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.swaggerEnabled {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}

// registerDomainRoutes registers all domain routes at the root, as the clients expect.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()

	srv.setupUserDomain(ctx, srv.gin, mw)
	srv.setupItemDomain(ctx, srv.gin, mw)
}

// rootCheck answers GET / with a plain-text banner.
// @Summary Root
// @Description Plain-text liveness banner
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Server is up and running!"
// @Router / [get]
func (srv HTTPServer) rootCheck(c *gin.Context) {
	response.Text(c, RootMessage)
}
