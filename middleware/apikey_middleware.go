// middleware/apikey_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/egypay/fawaterak_backend/models"
)

// RequireAPIKey gates an endpoint behind the merchant API key. The verify
// function decides whether the supplied key is valid, so the middleware never
// holds the key itself.
func RequireAPIKey(verify func(string) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := extractAPIKey(c)
			if key == "" || !verify(key) {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Invalid or missing API key",
				})
			}
			return next(c)
		}
	}
}

func extractAPIKey(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Request().Header.Get("X-Api-Key")
}
