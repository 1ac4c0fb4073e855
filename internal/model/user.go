package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an employee identity created on first login through the
// external gateway. Nullable profile fields mirror the login payload:
// a nil pointer means the gateway never sent that field.
type User struct {
	ID           int       `db:"id" json:"id"`
	OpenID       string    `db:"open_id" json:"openId"`
	Name         *string   `db:"name" json:"name"`
	Email        *string   `db:"email" json:"email"`
	LoginMethod  *string   `db:"login_method" json:"loginMethod"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
	LastSignedIn time.Time `db:"last_signed_in" json:"lastSignedIn"`
}
