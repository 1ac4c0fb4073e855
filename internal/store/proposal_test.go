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

type fakeProposalRow struct {
	scanErr  error
	proposal *model.Proposal
}

func (r *fakeProposalRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	p := r.proposal
	switch len(dest) {
	case 12:
		*dest[0].(*int) = p.ID
		*dest[1].(*string) = p.ProposalNumber
		*dest[2].(*int) = p.UserID
		*dest[3].(*string) = p.Bank
		*dest[4].(*model.ProposalType) = p.Type
		*dest[5].(*int) = p.Installments
		*dest[6].(*int64) = p.Value
		*dest[7].(*int64) = p.Commission
		*dest[8].(*model.ProposalStatus) = p.Status
		*dest[9].(**string) = p.Notes
		*dest[10].(*time.Time) = p.CreatedAt
		*dest[11].(*time.Time) = p.UpdatedAt
	case 4:
		// CreateProposal: id, status, created_at, updated_at
		*dest[0].(*int) = p.ID
		*dest[1].(*model.ProposalStatus) = p.Status
		*dest[2].(*time.Time) = p.CreatedAt
		*dest[3].(*time.Time) = p.UpdatedAt
	case 1:
		// UpdateProposal: updated_at
		*dest[0].(*time.Time) = p.UpdatedAt
	default:
		panic("fakeProposalRow.Scan: unexpected dest count")
	}
	return nil
}

type fakeProposalRows struct {
	data    []model.Proposal
	idx     int
	scanErr error
	err     error
}

func (r *fakeProposalRows) Close()                                       {}
func (r *fakeProposalRows) Err() error                                   { return r.err }
func (r *fakeProposalRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeProposalRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeProposalRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeProposalRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	p := r.data[r.idx]
	r.idx++
	return (&fakeProposalRow{proposal: &p}).Scan(dest...)
}
func (r *fakeProposalRows) Values() ([]any, error) { return nil, nil }
func (r *fakeProposalRows) RawValues() [][]byte    { return nil }
func (r *fakeProposalRows) Conn() *pgx.Conn        { return nil }

func sampleProposal(now time.Time) *model.Proposal {
	return &model.Proposal{
		ID:             7,
		ProposalNumber: "P-2024-001",
		UserID:         42,
		Bank:           "Banco Alfa",
		Type:           model.TypeNovo,
		Installments:   48,
		Value:          150000,
		Commission:     7500,
		Status:         model.StatusAtivo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestCreateProposal(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success fills generated columns", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeProposalRow{proposal: sampleProposal(now)}
			},
		}
		in := &model.Proposal{
			ProposalNumber: "P-2024-001",
			UserID:         42,
			Bank:           "Banco Alfa",
			Type:           model.TypeNovo,
			Installments:   48,
			Value:          150000,
			Commission:     7500,
		}
		p, err := CreateProposal(context.Background(), db, in)
		require.NoError(t, err)
		require.Equal(t, 7, p.ID)
		require.Equal(t, model.StatusAtivo, p.Status)
		require.Equal(t, now, p.CreatedAt)
		require.Len(t, gotArgs, 8)
		require.Equal(t, "P-2024-001", gotArgs[0])
		require.Equal(t, 42, gotArgs[1])
	})

	t.Run("insert error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeProposalRow{scanErr: errors.New("duplicate key")}
			},
		}
		_, err := CreateProposal(context.Background(), db, &model.Proposal{})
		require.Error(t, err)
	})
}

func TestGetProposalByID(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeProposalRow{proposal: sampleProposal(now)}
			},
		}
		p, err := GetProposalByID(context.Background(), db, 7)
		require.NoError(t, err)
		require.Equal(t, int64(150000), p.Value)
		require.Nil(t, p.Notes)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeProposalRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetProposalByID(context.Background(), db, 99)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListProposals(t *testing.T) {
	now := time.Now().UTC()

	t.Run("all", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeProposalRows{data: []model.Proposal{*sampleProposal(now), *sampleProposal(now)}}, nil
			},
		}
		rows, err := ListProposals(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, rows, 2)
	})

	t.Run("by user passes the id", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				gotArgs = args
				return &fakeProposalRows{}, nil
			},
		}
		rows, err := ListProposalsByUser(context.Background(), db, 42)
		require.NoError(t, err)
		require.Empty(t, rows)
		require.NotNil(t, rows)
		require.Equal(t, []any{42}, gotArgs)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("down")
			},
		}
		_, err := ListProposals(context.Background(), db)
		require.Error(t, err)
	})
}

func TestUpdateProposal(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeProposalRow{proposal: &model.Proposal{UpdatedAt: now.Add(time.Hour)}}
			},
		}
		in := sampleProposal(now)
		in.Value = 200000
		p, err := UpdateProposal(context.Background(), db, in)
		require.NoError(t, err)
		require.Equal(t, now.Add(time.Hour), p.UpdatedAt)
		require.Len(t, gotArgs, 9)
		require.Equal(t, int64(200000), gotArgs[4])
		require.Equal(t, 7, gotArgs[8])
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeProposalRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := UpdateProposal(context.Background(), db, sampleProposal(now))
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteProposal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, DeleteProposal(context.Background(), db, 7))
		require.Equal(t, []any{7}, gotArgs)
	})

	t.Run("exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("down")
			},
		}
		require.Error(t, DeleteProposal(context.Background(), db, 7))
	})
}
