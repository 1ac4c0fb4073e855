package api

// LoginRequest is the identity payload the external login gateway posts
// after it has verified the user. Pointer fields distinguish "absent"
// (leave the stored value alone) from an explicit empty value.
// swagger:model api.LoginRequest
type LoginRequest struct {
	OpenID      string  `json:"openId" validate:"required,max=64" example:"oid-1234"`
	Name        *string `json:"name,omitempty" example:"Alice"`
	Email       *string `json:"email,omitempty" validate:"omitempty,max=320" example:"alice@example.com"`
	LoginMethod *string `json:"loginMethod,omitempty" validate:"omitempty,max=64" example:"oidc"`
}
