package api

import "comissiona/internal/model"

// swagger:model api.CreateCommissionConfigRequest
type CreateCommissionConfigRequest struct {
	UserID               int                `json:"userId" validate:"required,gt=0" example:"42"`
	Bank                 string             `json:"bank" validate:"required,max=100" example:"Banco Alfa"`
	ProposalType         model.ProposalType `json:"proposalType" validate:"required,oneof=novo refinanciamento portabilidade refin_portabilidade refin_carteira fgts clt outros" example:"novo"`
	CommissionPercentage int64              `json:"commissionPercentage" validate:"required,gt=0" example:"500"`
}
