package router

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/michellealmonte/marketing-api/internal/auth"
	"github.com/michellealmonte/marketing-api/internal/config"
	"github.com/michellealmonte/marketing-api/internal/entity"
	"github.com/michellealmonte/marketing-api/internal/handler"
	middlewarepkg "github.com/michellealmonte/marketing-api/internal/middleware"
)

// Pinger reports backing-store health for the /health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth       *handler.AuthHandler
	Contact    *handler.ContactHandler
	Newsletter *handler.NewsletterHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, db Pinger, handlers Handlers) {
	e.GET("/", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "Michelle Almonte Image Consulting API", map[string]any{
			"endpoints": []string{
				"POST /api/contact",
				"POST /api/newsletter/subscribe",
				"POST /api/newsletter/unsubscribe",
				"GET /health",
			},
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if db != nil {
			if err := db.Ping(c.Request().Context()); err != nil {
				return handler.Error(c, http.StatusServiceUnavailable, "database unreachable")
			}
		}
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	api := e.Group("/api")

	api.POST("/auth/login", handlers.Auth.Login)

	api.POST("/contact", handlers.Contact.Submit, middlewarepkg.RateLimiter(cfg.RateLimitContact))

	api.POST("/newsletter/subscribe", handlers.Newsletter.Subscribe, middlewarepkg.RateLimiter(cfg.RateLimitNewsletter))
	api.POST("/newsletter/unsubscribe", handlers.Newsletter.Unsubscribe)

	secured := api.Group("", middlewarepkg.JWT(jwtManager))

	admin := secured.Group("", middlewarepkg.RequireRole(entity.RoleAdmin, entity.RoleModerator))
	admin.GET("/contact", handlers.Contact.List)
	admin.PUT("/contact/:id/status", handlers.Contact.UpdateStatus)
	admin.GET("/newsletter/subscribers", handlers.Newsletter.ListSubscribers)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return handler.Error(c, http.StatusNotFound, "route not found")
	})
}
