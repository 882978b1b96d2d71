package ports

import "github.com/spendwise/expense-system/internal/core/domain"

// Actor identifies the authenticated caller of a service operation. It is
// built by the transport layer from verified token claims and carried through
// every permission check.
type Actor struct {
	UserID int64
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}

// Scope restricts a query to one user's rows, or spans all users.
type Scope struct {
	UserID   int64
	AllUsers bool
}

// ScopeUser returns a scope covering a single user's expenses.
func ScopeUser(id int64) Scope {
	return Scope{UserID: id}
}

// ScopeAll returns a scope covering every user's expenses.
func ScopeAll() Scope {
	return Scope{AllUsers: true}
}

// QueryScope is the scope an actor is entitled to: admins see all rows,
// everyone else sees their own.
func (a Actor) QueryScope() Scope {
	if a.IsAdmin() {
		return ScopeAll()
	}
	return ScopeUser(a.UserID)
}
