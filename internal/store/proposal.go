package store

import (
	"context"

	"comissiona/internal/database"
	"comissiona/internal/model"
)

const proposalColumns = `id, proposal_number, user_id, bank, proposal_type, installments, value, commission, status, notes, created_at, updated_at`

func scanProposal(row interface{ Scan(dest ...any) error }) (*model.Proposal, error) {
	p := &model.Proposal{}
	err := row.Scan(
		&p.ID,
		&p.ProposalNumber,
		&p.UserID,
		&p.Bank,
		&p.Type,
		&p.Installments,
		&p.Value,
		&p.Commission,
		&p.Status,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProposal inserts p and fills in the generated columns. Status is
// left to the database default.
func CreateProposal(ctx context.Context, db database.DB, p *model.Proposal) (*model.Proposal, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO proposals (proposal_number, user_id, bank, proposal_type, installments, value, commission, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, status, created_at, updated_at`,
		p.ProposalNumber,
		p.UserID,
		p.Bank,
		p.Type,
		p.Installments,
		p.Value,
		p.Commission,
		p.Notes,
	)
	if err := row.Scan(&p.ID, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, wrap("CreateProposal", err)
	}
	return p, nil
}

func GetProposalByID(ctx context.Context, db database.DB, id int) (*model.Proposal, error) {
	row := db.QueryRow(ctx,
		`SELECT `+proposalColumns+` FROM proposals WHERE id = $1`,
		id,
	)
	p, err := scanProposal(row)
	if err != nil {
		return nil, wrap("GetProposalByID", err)
	}
	return p, nil
}

func ListProposals(ctx context.Context, db database.DB) ([]model.Proposal, error) {
	rows, err := db.Query(ctx,
		`SELECT `+proposalColumns+` FROM proposals ORDER BY id`,
	)
	if err != nil {
		return nil, wrap("ListProposals", err)
	}
	defer rows.Close()

	proposals := []model.Proposal{}
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, wrap("ListProposals", err)
		}
		proposals = append(proposals, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListProposals", err)
	}
	return proposals, nil
}

func ListProposalsByUser(ctx context.Context, db database.DB, userID int) ([]model.Proposal, error) {
	rows, err := db.Query(ctx,
		`SELECT `+proposalColumns+` FROM proposals WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, wrap("ListProposalsByUser", err)
	}
	defer rows.Close()

	proposals := []model.Proposal{}
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, wrap("ListProposalsByUser", err)
		}
		proposals = append(proposals, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListProposalsByUser", err)
	}
	return proposals, nil
}

// UpdateProposal writes every mutable column of p. user_id is immutable
// and is not part of the SET list.
func UpdateProposal(ctx context.Context, db database.DB, p *model.Proposal) (*model.Proposal, error) {
	row := db.QueryRow(ctx,
		`UPDATE proposals
		 SET proposal_number = $1, bank = $2, proposal_type = $3, installments = $4,
		     value = $5, commission = $6, status = $7, notes = $8, updated_at = now()
		 WHERE id = $9
		 RETURNING updated_at`,
		p.ProposalNumber,
		p.Bank,
		p.Type,
		p.Installments,
		p.Value,
		p.Commission,
		p.Status,
		p.Notes,
		p.ID,
	)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		return nil, wrap("UpdateProposal", err)
	}
	return p, nil
}

func DeleteProposal(ctx context.Context, db database.DB, id int) error {
	if _, err := db.Exec(ctx, `DELETE FROM proposals WHERE id = $1`, id); err != nil {
		return wrap("DeleteProposal", err)
	}
	return nil
}
