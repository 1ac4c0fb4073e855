package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"comissiona/internal/api"
	"comissiona/internal/cache"
	"comissiona/internal/config"
	"comissiona/internal/database"
	"comissiona/internal/service"
	"comissiona/internal/store"
)

var (
	verifySession = service.VerifySession
	revokeSession = service.RevokeSession
	getUserByID   = store.GetUserByID
)

// MeHandler returns the current identity, or null when there is no live
// session. Both cases are 200; unauthenticated is not an error here.
// @Summary     Current identity
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/me [get]
func MeHandler(db database.DB, rdb cache.Cache, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		ck, err := c.Cookie(service.SessionCookie)
		if err != nil || ck.Value == "" {
			return c.JSON(http.StatusOK, nil)
		}
		claims, err := verifySession(c.Request().Context(), rdb, cfg.SessionSecret, ck.Value)
		if err != nil {
			return c.JSON(http.StatusOK, nil)
		}
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusOK, nil)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to load user"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// LogoutHandler revokes the session record and clears the cookie. It
// succeeds even without a session so repeated logouts are harmless.
// @Summary     Log out
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.SuccessResponse
// @Router      /auth/logout [post]
func LogoutHandler(rdb cache.Cache, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ck, err := c.Cookie(service.SessionCookie); err == nil && ck.Value != "" {
			if claims, err := verifySession(c.Request().Context(), rdb, cfg.SessionSecret, ck.Value); err == nil {
				_ = revokeSession(c.Request().Context(), rdb, claims.SessionID)
			}
		}
		c.SetCookie(&http.Cookie{
			Name:     service.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
	}
}
