package api

import "comissiona/internal/model"

// swagger:model api.UpdateUserRoleRequest
type UpdateUserRoleRequest struct {
	Role model.Role `json:"role" validate:"required,oneof=user admin" example:"admin"`
}
