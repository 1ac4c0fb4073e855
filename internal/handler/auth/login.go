package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"comissiona/internal/api"
	"comissiona/internal/cache"
	"comissiona/internal/config"
	"comissiona/internal/database"
	"comissiona/internal/model"
	"comissiona/internal/service"
	"comissiona/internal/store"
)

var (
	verifyGatewaySecret = service.VerifyGatewaySecret
	upsertUser          = store.UpsertUser
	issueSession        = service.IssueSession
)

// LoginHandler is the session exchange called by the external login
// gateway once it has verified the user's identity. The gateway
// authenticates itself with Basic credentials checked against the
// configured bcrypt hash.
// @Summary     Exchange a verified identity for a session
// @Description Upserts the user keyed by openId and sets the session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       Authorization header string           true "Basic base64(gateway_id:gateway_secret)"
// @Param       payload       body   api.LoginRequest true "Verified identity payload"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, rdb cache.Cache, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		gatewayID, gatewaySecret, ok := c.Request().BasicAuth()
		if !ok || gatewayID != cfg.GatewayID || verifyGatewaySecret(cfg.GatewaySecretHash, gatewaySecret) != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Code: api.CodeUnauthenticated, Message: "invalid gateway credentials"})
		}

		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: err.Error()})
		}

		params := store.UpsertUserParams{
			OpenID:       req.OpenID,
			Name:         req.Name,
			Email:        req.Email,
			LoginMethod:  req.LoginMethod,
			LastSignedIn: time.Now(),
		}
		// The configured owner identity is promoted to admin on every
		// login; everyone else keeps the column default or whatever an
		// admin set since.
		if cfg.OwnerOpenID != "" && req.OpenID == cfg.OwnerOpenID {
			admin := model.RoleAdmin
			params.Role = &admin
		}

		user, err := upsertUser(c.Request().Context(), db, params)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to upsert user"})
		}

		token, err := issueSession(c.Request().Context(), rdb, cfg.SessionSecret, user, cfg.SessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to issue session"})
		}

		c.SetCookie(&http.Cookie{
			Name:     service.SessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(cfg.SessionTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
