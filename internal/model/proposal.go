package model

import "time"

// ProposalType is the closed set of loan products a proposal can carry.
type ProposalType string

const (
	TypeNovo               ProposalType = "novo"
	TypeRefinanciamento    ProposalType = "refinanciamento"
	TypePortabilidade      ProposalType = "portabilidade"
	TypeRefinPortabilidade ProposalType = "refin_portabilidade"
	TypeRefinCarteira      ProposalType = "refin_carteira"
	TypeFGTS               ProposalType = "fgts"
	TypeCLT                ProposalType = "clt"
	TypeOutros             ProposalType = "outros"
)

func (t ProposalType) Valid() bool {
	switch t {
	case TypeNovo, TypeRefinanciamento, TypePortabilidade, TypeRefinPortabilidade,
		TypeRefinCarteira, TypeFGTS, TypeCLT, TypeOutros:
		return true
	}
	return false
}

type ProposalStatus string

const (
	StatusAtivo     ProposalStatus = "ativo"
	StatusCancelado ProposalStatus = "cancelado"
	StatusConcluido ProposalStatus = "concluido"
)

func (s ProposalStatus) Valid() bool {
	switch s {
	case StatusAtivo, StatusCancelado, StatusConcluido:
		return true
	}
	return false
}

// Proposal is a loan application owned by one user. Value and Commission
// are integer cents; Commission is a snapshot computed at write time from
// the owner's commission config, never recomputed retroactively.
type Proposal struct {
	ID             int            `db:"id" json:"id"`
	ProposalNumber string         `db:"proposal_number" json:"proposalNumber"`
	UserID         int            `db:"user_id" json:"userId"`
	Bank           string         `db:"bank" json:"bank"`
	Type           ProposalType   `db:"proposal_type" json:"proposalType"`
	Installments   int            `db:"installments" json:"installments"`
	Value          int64          `db:"value" json:"value"`
	Commission     int64          `db:"commission" json:"commission"`
	Status         ProposalStatus `db:"status" json:"status"`
	Notes          *string        `db:"notes" json:"notes"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`
}
