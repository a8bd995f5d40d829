package entity

import (
	"time"
)

// Role is the binary authorization level of an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the aggregate root for the account domain.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID        string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientUser is the projection of User that is safe to hand across the
// trust boundary. It has no password field at all, so no serialization
// path can leak the hash.
type ClientUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Client builds the password-free projection of u.
func (u *User) Client() ClientUser {
	return ClientUser{ID: u.ID, Email: u.Email, Role: u.Role}
}

// IsAdmin reports whether the user holds the administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
