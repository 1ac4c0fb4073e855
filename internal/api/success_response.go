package api

// swagger:model api.SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}
