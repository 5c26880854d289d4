package middleware

import (
	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the caller identity, set by an upstream auth layer.
const UserIDHeader = "X-User-Id"

const userIDContextKey = "user_id"

// SetupIdentity stores the caller identity from the request header on the
// echo context. The header may be absent; endpoints that need an identity
// reject the request themselves.
func SetupIdentity(e *echo.Echo) {
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(userIDContextKey, c.Request().Header.Get(UserIDHeader))
			return next(c)
		}
	})
}

// UserID returns the caller identity for the current request, or an empty
// string when none was provided.
func UserID(c echo.Context) string {
	if userID, ok := c.Get(userIDContextKey).(string); ok {
		return userID
	}
	return ""
}
