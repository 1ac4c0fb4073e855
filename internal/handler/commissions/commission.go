// Package commissions holds the admin-only rate-table handlers. The
// admin gate itself lives in the router middleware.
package commissions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"comissiona/internal/api"
	"comissiona/internal/database"
	"comissiona/internal/model"
	"comissiona/internal/store"
)

var (
	createCommissionConfig      = store.CreateCommissionConfig
	listCommissionConfigs       = store.ListCommissionConfigs
	listCommissionConfigsByUser = store.ListCommissionConfigsByUser
	updateCommissionConfig      = store.UpdateCommissionConfig
	deleteCommissionConfig      = store.DeleteCommissionConfig
)

// @Summary     Create a commission config
// @Tags        commissions
// @Accept      json
// @Produce     json
// @Param       payload body api.CreateCommissionConfigRequest true "Rate rule"
// @Success     201 {object} api.CommissionConfigResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /commissions [post]
func CreateCommissionConfigHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateCommissionConfigRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: err.Error()})
		}

		cfg, err := createCommissionConfig(c.Request().Context(), db, &model.CommissionConfig{
			UserID:               req.UserID,
			Bank:                 req.Bank,
			Type:                 req.ProposalType,
			CommissionPercentage: req.CommissionPercentage,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to create commission config"})
		}
		return c.JSON(http.StatusCreated, api.NewCommissionConfigResponse(cfg))
	}
}

// @Summary     List all commission configs
// @Tags        commissions
// @Produce     json
// @Success     200 {array} api.CommissionConfigResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /commissions [get]
func ListCommissionConfigsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		rows, err := listCommissionConfigs(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to list commission configs"})
		}
		out := make([]api.CommissionConfigResponse, 0, len(rows))
		for i := range rows {
			out = append(out, api.NewCommissionConfigResponse(&rows[i]))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     List one user's commission configs
// @Tags        commissions
// @Produce     json
// @Param       user_id path int true "User ID"
// @Success     200 {array} api.CommissionConfigResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /commissions/users/{user_id} [get]
func ListUserCommissionConfigsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid user ID"})
		}
		rows, err := listCommissionConfigsByUser(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to list commission configs"})
		}
		out := make([]api.CommissionConfigResponse, 0, len(rows))
		for i := range rows {
			out = append(out, api.NewCommissionConfigResponse(&rows[i]))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// UpdateCommissionConfigHandler changes a rule's percentage. Existing
// proposals keep their snapshots; only future writes see the new rate.
// @Summary     Update a commission config
// @Tags        commissions
// @Accept      json
// @Produce     json
// @Param       id      path int                               true "Config ID"
// @Param       payload body api.UpdateCommissionConfigRequest true "New percentage"
// @Success     200 {object} api.CommissionConfigResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /commissions/{id} [put]
func UpdateCommissionConfigHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid config ID"})
		}

		var req api.UpdateCommissionConfigRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: err.Error()})
		}

		cfg, err := updateCommissionConfig(c.Request().Context(), db, id, req.CommissionPercentage)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.CodeNotFound, Message: "commission config not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to update commission config"})
		}
		return c.JSON(http.StatusOK, api.NewCommissionConfigResponse(cfg))
	}
}

// @Summary     Delete a commission config
// @Tags        commissions
// @Produce     json
// @Param       id path int true "Config ID"
// @Success     200 {object} api.SuccessResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /commissions/{id} [delete]
func DeleteCommissionConfigHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid config ID"})
		}
		if err := deleteCommissionConfig(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to delete commission config"})
		}
		return c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
	}
}
