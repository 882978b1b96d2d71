package ports

import (
	"context"
	"time"

	"github.com/spendwise/expense-system/internal/core/domain"
)

// AuthService implements registration, login, and logout.
type AuthService interface {
	// Register creates a customer account. The role is fixed here: admins are
	// created only through the admin user management service.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the token id until the token's natural expiry.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}
