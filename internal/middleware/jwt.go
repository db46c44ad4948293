package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	authpkg "github.com/michellealmonte/marketing-api/internal/auth"
)

// JWT validates bearer tokens and stores admin metadata in the request context.
func JWT(manager *authpkg.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return deny(c, http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return deny(c, http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := manager.ParseToken(parts[1])
			if err != nil {
				return deny(c, http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextKeyAdminID, claims.Subject)
			c.Set(ContextKeyAdminEmail, claims.Email)
			c.Set(ContextKeyAdminRole, claims.Role)

			return next(c)
		}
	}
}
