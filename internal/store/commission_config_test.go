package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"comissiona/internal/database"
	"comissiona/internal/model"
)

type fakeConfigRow struct {
	scanErr error
	config  *model.CommissionConfig
}

func (r *fakeConfigRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	c := r.config
	switch len(dest) {
	case 7:
		*dest[0].(*int) = c.ID
		*dest[1].(*int) = c.UserID
		*dest[2].(*string) = c.Bank
		*dest[3].(*model.ProposalType) = c.Type
		*dest[4].(*int64) = c.CommissionPercentage
		*dest[5].(*time.Time) = c.CreatedAt
		*dest[6].(*time.Time) = c.UpdatedAt
	case 3:
		// CreateCommissionConfig: id, created_at, updated_at
		*dest[0].(*int) = c.ID
		*dest[1].(*time.Time) = c.CreatedAt
		*dest[2].(*time.Time) = c.UpdatedAt
	default:
		panic("fakeConfigRow.Scan: unexpected dest count")
	}
	return nil
}

type fakeConfigRows struct {
	data    []model.CommissionConfig
	idx     int
	scanErr error
	err     error
}

func (r *fakeConfigRows) Close()                                       {}
func (r *fakeConfigRows) Err() error                                   { return r.err }
func (r *fakeConfigRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeConfigRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeConfigRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeConfigRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	c := r.data[r.idx]
	r.idx++
	return (&fakeConfigRow{config: &c}).Scan(dest...)
}
func (r *fakeConfigRows) Values() ([]any, error) { return nil, nil }
func (r *fakeConfigRows) RawValues() [][]byte    { return nil }
func (r *fakeConfigRows) Conn() *pgx.Conn        { return nil }

func sampleConfig(now time.Time) *model.CommissionConfig {
	return &model.CommissionConfig{
		ID:                   3,
		UserID:               42,
		Bank:                 "Banco Alfa",
		Type:                 model.TypeNovo,
		CommissionPercentage: 500,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func TestCreateCommissionConfig(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeConfigRow{config: sampleConfig(now)}
			},
		}
		in := &model.CommissionConfig{
			UserID:               42,
			Bank:                 "Banco Alfa",
			Type:                 model.TypeNovo,
			CommissionPercentage: 500,
		}
		c, err := CreateCommissionConfig(context.Background(), db, in)
		require.NoError(t, err)
		require.Equal(t, 3, c.ID)
		require.Equal(t, now, c.CreatedAt)
		require.Equal(t, []any{42, "Banco Alfa", model.TypeNovo, int64(500)}, gotArgs)
	})

	t.Run("insert error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeConfigRow{scanErr: errors.New("constraint")}
			},
		}
		_, err := CreateCommissionConfig(context.Background(), db, &model.CommissionConfig{})
		require.Error(t, err)
	})
}

func TestFindCommissionConfig(t *testing.T) {
	now := time.Now().UTC()

	t.Run("matches on the full tuple", func(t *testing.T) {
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				gotSQL = sql
				gotArgs = args
				return &fakeConfigRow{config: sampleConfig(now)}
			},
		}
		c, err := FindCommissionConfig(context.Background(), db, 42, "Banco Alfa", model.TypeNovo)
		require.NoError(t, err)
		require.Equal(t, int64(500), c.CommissionPercentage)
		require.Contains(t, gotSQL, "ORDER BY id")
		require.Contains(t, gotSQL, "LIMIT 1")
		require.Equal(t, []any{42, "Banco Alfa", model.TypeNovo}, gotArgs)
	})

	t.Run("no rule", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeConfigRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := FindCommissionConfig(context.Background(), db, 42, "Banco Beta", model.TypeFGTS)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListCommissionConfigs(t *testing.T) {
	now := time.Now().UTC()

	t.Run("all", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeConfigRows{data: []model.CommissionConfig{*sampleConfig(now)}}, nil
			},
		}
		configs, err := ListCommissionConfigs(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		require.Equal(t, model.TypeNovo, configs[0].Type)
	})

	t.Run("by user passes the id", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				gotArgs = args
				return &fakeConfigRows{}, nil
			},
		}
		configs, err := ListCommissionConfigsByUser(context.Background(), db, 42)
		require.NoError(t, err)
		require.Empty(t, configs)
		require.NotNil(t, configs)
		require.Equal(t, []any{42}, gotArgs)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeConfigRows{err: errors.New("broken pipe")}, nil
			},
		}
		_, err := ListCommissionConfigs(context.Background(), db)
		require.Error(t, err)
	})
}

func TestUpdateCommissionConfig(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		updated := sampleConfig(now)
		updated.CommissionPercentage = 750
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeConfigRow{config: updated}
			},
		}
		c, err := UpdateCommissionConfig(context.Background(), db, 3, 750)
		require.NoError(t, err)
		require.Equal(t, int64(750), c.CommissionPercentage)
		require.Equal(t, []any{int64(750), 3}, gotArgs)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeConfigRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := UpdateCommissionConfig(context.Background(), db, 99, 750)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteCommissionConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, DeleteCommissionConfig(context.Background(), db, 3))
		require.Equal(t, []any{3}, gotArgs)
	})

	t.Run("exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("down")
			},
		}
		require.Error(t, DeleteCommissionConfig(context.Background(), db, 3))
	})
}
