package api

import (
	"time"

	"comissiona/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID           int        `json:"id" example:"42"`
	OpenID       string     `json:"openId" example:"oid-1234"`
	Name         *string    `json:"name"`
	Email        *string    `json:"email"`
	LoginMethod  *string    `json:"loginMethod"`
	Role         model.Role `json:"role" example:"user"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastSignedIn time.Time  `json:"lastSignedIn"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		LastSignedIn: u.LastSignedIn,
	}
}
