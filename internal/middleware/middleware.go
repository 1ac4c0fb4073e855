package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"comissiona/internal/api"
	"comissiona/internal/cache"
	"comissiona/internal/service"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context, rdb cache.Cache, secret string) (*service.SessionClaims, error) {
	ck, err := c.Cookie(service.SessionCookie)
	if err != nil || ck.Value == "" {
		return nil, fmt.Errorf("missing session cookie")
	}
	claims, err := service.VerifySession(c.Request().Context(), rdb, secret, ck.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid session: %v", err)
	}
	return claims, nil
}

// RequireAuth rejects requests without a live session and stores the
// session claims under ContextUserKey for the handler.
func RequireAuth(rdb cache.Cache, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, rdb, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.CodeUnauthenticated, Message: err.Error()})
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin is RequireAuth plus an admin role check. Failing the role
// check is FORBIDDEN, distinct from the missing-session case.
func RequireAdmin(rdb cache.Cache, secret string) echo.MiddlewareFunc {
	auth := RequireAuth(rdb, secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.SessionClaims)
			if !claims.IsAdmin() {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Code: api.CodeForbidden, Message: "admin privileges required"})
			}
			return next(c)
		})
	}
}
