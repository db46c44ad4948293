package middleware

import "github.com/labstack/echo/v4"

// Context keys used to store authentication metadata.
const (
	ContextKeyAdminID    = "admin_id"
	ContextKeyAdminEmail = "admin_email"
	ContextKeyAdminRole  = "admin_role"
	ContextKeyRequestID  = "request_id"
)

// deny writes the standard error envelope and stops the chain.
func deny(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{"success": false, "message": message})
}
