package ports

import (
	"context"
	"time"

	"github.com/spendwise/expense-system/internal/core/domain"
)

// UserWithTotal pairs a user with their lifetime expense total for the admin
// user table.
type UserWithTotal struct {
	*domain.User
	TotalExpenses float64 `json:"total_expenses"`
}

// AdminOverview holds the headline figures of the admin dashboard.
type AdminOverview struct {
	TotalUsers      int64   `json:"total_users"`
	TotalExpenses   float64 `json:"total_expenses"`
	TotalCategories int64   `json:"total_categories"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
}

// CreateUserInput carries the fields for an admin-created account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the replacement fields for an account. An empty
// Password keeps the current one.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UserService defines admin-only user management.
type UserService interface {
	List(ctx context.Context) ([]UserWithTotal, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)
	// Delete removes an account and its expenses. Removing your own account
	// is refused.
	Delete(ctx context.Context, actorID, id int64) error
	Overview(ctx context.Context, now time.Time) (*AdminOverview, error)
}
