package api

import (
	"time"

	"comissiona/internal/model"
)

// swagger:model api.ProposalResponse
type ProposalResponse struct {
	ID             int                  `json:"id" example:"7"`
	ProposalNumber string               `json:"proposalNumber" example:"P-2024-001"`
	UserID         int                  `json:"userId" example:"42"`
	Bank           string               `json:"bank" example:"Banco Alfa"`
	ProposalType   model.ProposalType   `json:"proposalType" example:"novo"`
	Installments   int                  `json:"installments" example:"48"`
	Value          int64                `json:"value" example:"150000"`
	Commission     int64                `json:"commission" example:"7500"`
	Status         model.ProposalStatus `json:"status" example:"ativo"`
	Notes          *string              `json:"notes"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func NewProposalResponse(p *model.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:             p.ID,
		ProposalNumber: p.ProposalNumber,
		UserID:         p.UserID,
		Bank:           p.Bank,
		ProposalType:   p.Type,
		Installments:   p.Installments,
		Value:          p.Value,
		Commission:     p.Commission,
		Status:         p.Status,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
