package store

import (
	"context"
	"strconv"
	"strings"
	"time"

	"comissiona/internal/database"
	"comissiona/internal/model"
)

const userColumns = `id, open_id, name, email, login_method, role, created_at, updated_at, last_signed_in`

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.OpenID,
		&u.Name,
		&u.Email,
		&u.LoginMethod,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastSignedIn,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpsertUserParams carries the login payload. Nil pointer fields leave
// the stored column untouched; non-nil fields overwrite it, empty or not.
type UpsertUserParams struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *model.Role
	LastSignedIn time.Time
}

// UpsertUser inserts or updates a user keyed by open_id. last_signed_in
// is always written, so every login produces an observable update even
// when the payload carries nothing new.
func UpsertUser(ctx context.Context, db database.DB, p UpsertUserParams) (*model.User, error) {
	cols := []string{"open_id", "last_signed_in"}
	args := []any{p.OpenID, p.LastSignedIn}
	set := []string{"last_signed_in = EXCLUDED.last_signed_in"}

	add := func(col string, v any) {
		cols = append(cols, col)
		args = append(args, v)
		set = append(set, col+" = EXCLUDED."+col)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.LoginMethod != nil {
		add("login_method", *p.LoginMethod)
	}
	if p.Role != nil {
		add("role", *p.Role)
	}
	set = append(set, "updated_at = now()")

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}

	row := db.QueryRow(ctx,
		`INSERT INTO users (`+strings.Join(cols, ", ")+`)
		 VALUES (`+strings.Join(placeholders, ", ")+`)
		 ON CONFLICT (open_id) DO UPDATE SET `+strings.Join(set, ", ")+`
		 RETURNING `+userColumns,
		args...,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("UpsertUser", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("GetUserByID", err)
	}
	return u, nil
}

func GetUserByOpenID(ctx context.Context, db database.DB, openID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE open_id = $1`,
		openID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("GetUserByOpenID", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, wrap("ListUsers", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrap("ListUsers", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListUsers", err)
	}
	return users, nil
}

// UpdateUserRole writes the role column only and returns the updated row.
func UpdateUserRole(ctx context.Context, db database.DB, userID int, role model.Role) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET role = $1, updated_at = now()
		 WHERE id = $2
		 RETURNING `+userColumns,
		role,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("UpdateUserRole", err)
	}
	return u, nil
}
