package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"comissiona/internal/api"
	"comissiona/internal/cache"
	"comissiona/internal/database"
)

// PingResponse is the health check body.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler verifies both backing stores are reachable.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "database unhealthy"})
		}
		if err := rdb.Ping(c.Request().Context()).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
