package api

import "comissiona/internal/model"

// UpdateProposalRequest is a partial update: nil fields are left alone.
// swagger:model api.UpdateProposalRequest
type UpdateProposalRequest struct {
	ProposalNumber *string               `json:"proposalNumber,omitempty" validate:"omitempty,min=1,max=100"`
	Bank           *string               `json:"bank,omitempty" validate:"omitempty,min=1,max=100"`
	ProposalType   *model.ProposalType   `json:"proposalType,omitempty" validate:"omitempty,oneof=novo refinanciamento portabilidade refin_portabilidade refin_carteira fgts clt outros"`
	Installments   *int                  `json:"installments,omitempty" validate:"omitempty,gt=0"`
	Value          *int64                `json:"value,omitempty" validate:"omitempty,gt=0"`
	Status         *model.ProposalStatus `json:"status,omitempty" validate:"omitempty,oneof=ativo cancelado concluido"`
	Notes          *string               `json:"notes,omitempty"`
}
