// Package users holds the admin-only user management handlers.
package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"comissiona/internal/api"
	"comissiona/internal/database"
	"comissiona/internal/store"
)

var (
	listUsers      = store.ListUsers
	getUserByID    = store.GetUserByID
	updateUserRole = store.UpdateUserRole
)

// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		rows, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to list users"})
		}
		out := make([]api.UserResponse, 0, len(rows))
		for i := range rows {
			out = append(out, api.NewUserResponse(&rows[i]))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Get a user
// @Tags        users
// @Produce     json
// @Param       user_id path int true "User ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{user_id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.CodeNotFound, Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to get user"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UpdateUserRoleHandler writes the role column through a dedicated typed
// command and returns the updated user.
// @Summary     Update a user's role
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user_id path int                       true "User ID"
// @Param       payload body api.UpdateUserRoleRequest true "New role"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{user_id}/role [patch]
func UpdateUserRoleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid user ID"})
		}

		var req api.UpdateUserRoleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Code: api.CodeValidation, Message: err.Error()})
		}

		user, err := updateUserRole(c.Request().Context(), db, id, req.Role)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Code: api.CodeNotFound, Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Code: api.CodeInternal, Message: "failed to update user role"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
