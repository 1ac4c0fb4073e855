package model

import "time"

// CommissionConfig is an admin-defined rate rule keyed by
// (user, bank, proposal type). CommissionPercentage is stored in
// hundredths of a percent, so 500 means 5.00%.
type CommissionConfig struct {
	ID                   int          `db:"id" json:"id"`
	UserID               int          `db:"user_id" json:"userId"`
	Bank                 string       `db:"bank" json:"bank"`
	Type                 ProposalType `db:"proposal_type" json:"proposalType"`
	CommissionPercentage int64        `db:"commission_percentage" json:"commissionPercentage"`
	CreatedAt            time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time    `db:"updated_at" json:"updatedAt"`
}
