package ports

import (
	"context"

	"github.com/spendwise/expense-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Delete removes the user's expenses along with the account.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
