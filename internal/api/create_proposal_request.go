package api

import "comissiona/internal/model"

// swagger:model api.CreateProposalRequest
type CreateProposalRequest struct {
	ProposalNumber string             `json:"proposalNumber" validate:"required,max=100" example:"P-2024-001"`
	Bank           string             `json:"bank" validate:"required,max=100" example:"Banco Alfa"`
	ProposalType   model.ProposalType `json:"proposalType" validate:"required,oneof=novo refinanciamento portabilidade refin_portabilidade refin_carteira fgts clt outros" example:"novo"`
	Installments   int                `json:"installments" validate:"required,gt=0" example:"48"`
	Value          int64              `json:"value" validate:"required,gt=0" example:"150000"`
	Notes          *string            `json:"notes,omitempty"`
}
