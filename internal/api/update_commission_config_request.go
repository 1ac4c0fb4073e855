package api

// swagger:model api.UpdateCommissionConfigRequest
type UpdateCommissionConfigRequest struct {
	CommissionPercentage int64 `json:"commissionPercentage" validate:"required,gt=0" example:"650"`
}
