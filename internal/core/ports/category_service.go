package ports

import (
	"context"

	"github.com/spendwise/expense-system/internal/core/domain"
)

// CategoryService defines the category registry use cases. All mutations are
// admin-only; the transport layer enforces the role before calling in.
type CategoryService interface {
	Create(ctx context.Context, name, color string) (*domain.Category, error)
	Rename(ctx context.Context, id int64, newName, newColor string) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Category, error)
}
