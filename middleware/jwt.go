package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nabeelsyed11/Kimia-Reality/models"
	"github.com/nabeelsyed11/Kimia-Reality/utils"
)

// JWT validates the Authorization bearer token and stores the caller's
// identity on the request context.
func JWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, models.Fail("Authorization header is required"))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, models.Fail("Invalid authorization header format"))
			}

			claims, err := utils.ParseToken(secret, tokenParts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.Fail("Invalid token"))
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}

// AdminOnly rejects callers whose token does not carry the admin role. It
// must run after JWT.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("user_role").(string)
			if role != models.RoleAdmin {
				return c.JSON(http.StatusForbidden, models.Fail("Admin access required"))
			}
			return next(c)
		}
	}
}
