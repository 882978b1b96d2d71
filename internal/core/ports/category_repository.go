package ports

import (
	"context"

	"github.com/spendwise/expense-system/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
//
// Rename and DeleteAndReassign are multi-step writes touching both the
// category row and every expense referencing it by name; implementations must
// run each as a single transaction.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Count(ctx context.Context) (int64, error)
	// Rename updates name and color, rewriting the category reference on all
	// expenses that point at the old name.
	Rename(ctx context.Context, id int64, newName, newColor string) error
	// DeleteAndReassign moves every referencing expense to the reserved
	// Uncategorized category (creating it if absent) and removes the row.
	DeleteAndReassign(ctx context.Context, id int64) error
}
