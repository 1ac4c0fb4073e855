package api

import (
	"time"

	"comissiona/internal/model"
)

// swagger:model api.CommissionConfigResponse
type CommissionConfigResponse struct {
	ID                   int                `json:"id" example:"3"`
	UserID               int                `json:"userId" example:"42"`
	Bank                 string             `json:"bank" example:"Banco Alfa"`
	ProposalType         model.ProposalType `json:"proposalType" example:"novo"`
	CommissionPercentage int64              `json:"commissionPercentage" example:"500"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

func NewCommissionConfigResponse(c *model.CommissionConfig) CommissionConfigResponse {
	return CommissionConfigResponse{
		ID:                   c.ID,
		UserID:               c.UserID,
		Bank:                 c.Bank,
		ProposalType:         c.Type,
		CommissionPercentage: c.CommissionPercentage,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
