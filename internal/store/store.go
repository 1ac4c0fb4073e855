// Package store holds the SQL access functions for the three tables.
// Every function takes the injected database.DB handle so tests can run
// against a FakeDB.
package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound marks reads that matched no row; callers translate it to a
// 404 instead of a 500.
var ErrNotFound = errors.New("not found")

func wrap(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
