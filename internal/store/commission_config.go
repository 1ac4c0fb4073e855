package store

import (
	"context"

	"comissiona/internal/database"
	"comissiona/internal/model"
)

const configColumns = `id, user_id, bank, proposal_type, commission_percentage, created_at, updated_at`

func scanConfig(row interface{ Scan(dest ...any) error }) (*model.CommissionConfig, error) {
	c := &model.CommissionConfig{}
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Bank,
		&c.Type,
		&c.CommissionPercentage,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateCommissionConfig(ctx context.Context, db database.DB, c *model.CommissionConfig) (*model.CommissionConfig, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO commission_configs (user_id, bank, proposal_type, commission_percentage)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		c.UserID,
		c.Bank,
		c.Type,
		c.CommissionPercentage,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, wrap("CreateCommissionConfig", err)
	}
	return c, nil
}

// FindCommissionConfig returns the rate rule matching the tuple exactly.
// The key is not unique; the lowest id wins so duplicates resolve the
// same way every time. Bank matching is exact string equality.
func FindCommissionConfig(ctx context.Context, db database.DB, userID int, bank string, t model.ProposalType) (*model.CommissionConfig, error) {
	row := db.QueryRow(ctx,
		`SELECT `+configColumns+` FROM commission_configs
		 WHERE user_id = $1 AND bank = $2 AND proposal_type = $3
		 ORDER BY id
		 LIMIT 1`,
		userID,
		bank,
		t,
	)
	c, err := scanConfig(row)
	if err != nil {
		return nil, wrap("FindCommissionConfig", err)
	}
	return c, nil
}

func ListCommissionConfigs(ctx context.Context, db database.DB) ([]model.CommissionConfig, error) {
	rows, err := db.Query(ctx,
		`SELECT `+configColumns+` FROM commission_configs ORDER BY id`,
	)
	if err != nil {
		return nil, wrap("ListCommissionConfigs", err)
	}
	defer rows.Close()

	configs := []model.CommissionConfig{}
	for rows.Next() {
		c, err := scanConfig(rows)
		if err != nil {
			return nil, wrap("ListCommissionConfigs", err)
		}
		configs = append(configs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListCommissionConfigs", err)
	}
	return configs, nil
}

func ListCommissionConfigsByUser(ctx context.Context, db database.DB, userID int) ([]model.CommissionConfig, error) {
	rows, err := db.Query(ctx,
		`SELECT `+configColumns+` FROM commission_configs WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, wrap("ListCommissionConfigsByUser", err)
	}
	defer rows.Close()

	configs := []model.CommissionConfig{}
	for rows.Next() {
		c, err := scanConfig(rows)
		if err != nil {
			return nil, wrap("ListCommissionConfigsByUser", err)
		}
		configs = append(configs, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListCommissionConfigsByUser", err)
	}
	return configs, nil
}

// UpdateCommissionConfig changes the percentage only; the key tuple is
// fixed at creation.
func UpdateCommissionConfig(ctx context.Context, db database.DB, id int, percentage int64) (*model.CommissionConfig, error) {
	row := db.QueryRow(ctx,
		`UPDATE commission_configs
		 SET commission_percentage = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING `+configColumns,
		percentage,
		id,
	)
	c, err := scanConfig(row)
	if err != nil {
		return nil, wrap("UpdateCommissionConfig", err)
	}
	return c, nil
}

func DeleteCommissionConfig(ctx context.Context, db database.DB, id int) error {
	if _, err := db.Exec(ctx, `DELETE FROM commission_configs WHERE id = $1`, id); err != nil {
		return wrap("DeleteCommissionConfig", err)
	}
	return nil
}
