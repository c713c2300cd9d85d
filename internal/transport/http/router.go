package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ErlanBelekov/accounts/internal/transport/http/handler"
	"github.com/ErlanBelekov/accounts/internal/transport/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
)

type RouterConfig struct {
	// Development relaxes HSTS; everything else is identical across envs.
	Development bool
	// CORSOrigins lists allowed origins; empty or ["*"] allows any.
	CORSOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	verifier middleware.TokenVerifier,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security(cfg.Development))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Use(sloggin.NewWithConfig(logger, sloggin.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		Filters:          []sloggin.Filter{sloggin.IgnorePath("/livez", "/readyz")},
	}))
	r.Use(middleware.Metrics())

	r.GET("/livez", healthHandler.Live)
	r.GET("/readyz", healthHandler.Ready)

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected routes
	r.GET("/profile", middleware.Auth(verifier, logger), authHandler.Profile)

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
