package service

import (
	"context"
	"errors"

	"comissiona/internal/database"
	"comissiona/internal/model"
	"comissiona/internal/store"
)

var findCommissionConfig = store.FindCommissionConfig

// Commission converts a value in integer cents and a percentage in
// hundredths of a percent into commission cents. The divisor 10000 folds
// both scale factors; rounding is half up, matching how the stored
// snapshots were produced.
func Commission(value, percentage int64) int64 {
	return (value*percentage + 5000) / 10000
}

// ResolveCommission computes the commission snapshot for a new proposal:
// look up the owner's rate rule for (bank, type), apply it to value, or
// zero when no rule exists.
func ResolveCommission(ctx context.Context, db database.DB, userID int, bank string, t model.ProposalType, value int64) (int64, error) {
	cfg, err := findCommissionConfig(ctx, db, userID, bank, t)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return Commission(value, cfg.CommissionPercentage), nil
}
