package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole memastikan klaim JWT memiliki role yang dibutuhkan. Dipasang
// setelah JWTMiddleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Missing or invalid JWT claims",
					"data":    nil,
				})
			}
			if claims.Role != role {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"status":  http.StatusForbidden,
					"message": "Insufficient role",
					"data":    nil,
				})
			}
			return next(c)
		}
	}
}
