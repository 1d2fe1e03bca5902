package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "biblioteca-backend/docs"
	"biblioteca-backend/internal/library/books"
	"biblioteca-backend/internal/library/loans"
	"biblioteca-backend/internal/library/students"
	"biblioteca-backend/internal/platform/config"
	"biblioteca-backend/internal/platform/db"
	"biblioteca-backend/internal/platform/httpx"
	"biblioteca-backend/internal/platform/logger"
)

// NewRouter wires every resource onto one engine sharing the given pool.
func NewRouter(cfg *config.Config, database *db.DB) *gin.Engine {
	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery())
	// no reverse proxy in front: ClientIP is the socket address
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn().Err(err).Msg("failed to reset trusted proxies")
	}

	if cfg.IsDev() && len(cfg.CORS.AllowOrigins) > 0 {
		// CORS (only needed while the front end runs on its own dev server)
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowOrigins,
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// liveness / readiness / API docs
	r.GET("/", httpx.Hello)
	r.GET("/healthz", healthz(database))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// resources share the one pool
	students.RegisterRoutes(r, students.NewService(students.NewStore(database.DB, database.Dialect)))
	books.RegisterRoutes(r, books.NewService(books.NewStore(database.DB, database.Dialect)))
	loans.RegisterRoutes(r, loans.NewService(loans.NewStore(database.DB, database.Dialect)))

	return r
}

// healthz godoc
// @Summary  Readiness check
// @Tags     health
// @Produce  plain
// @Success  200 {string} string "ok"
// @Failure  503 {string} string "unavailable"
// @Router   /healthz [get]
func healthz(database *db.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.PingContext(ctx); err != nil {
			l := logger.FromContext(c)
			l.Error().Err(err).Msg("database ping failed")
			c.String(http.StatusServiceUnavailable, "unavailable")
			return
		}
		c.String(http.StatusOK, "ok")
	}
}
