package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// ValidRole reports whether s is one of the known roles. Roles are assigned
// exactly once, at user creation; nothing downstream falls back to a default.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleCustomer
}

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
