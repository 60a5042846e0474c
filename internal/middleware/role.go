package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireLevel returns a middleware function that enforces a minimum role
// level on the authenticated user. Levels are ordinal — 0 member, 1 admin,
// 2 webmaster — so the check is a simple >= against the JWT's "level"
// claim, which JWTAuth must have stored in the context beforehand. A
// missing or insufficient level aborts the request with 403 Forbidden and
// the attempted action never runs.
func RequireLevel(min uint8) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			level, ok := levelFrom(c)
			if !ok || level < min {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// levelFrom reads the role level out of the context. JWT numeric claims
// arrive as float64; integers are tolerated for tests that set the value
// directly.
func levelFrom(c echo.Context) (uint8, bool) {
	switch v := c.Get("level").(type) {
	case float64:
		if v < 0 || v > 255 {
			return 0, false
		}
		return uint8(v), true
	case uint8:
		return v, true
	case int:
		if v < 0 || v > 255 {
			return 0, false
		}
		return uint8(v), true
	}
	return 0, false
}
