package ports

import (
	"context"

	"github.com/spendwise/expense-system/internal/core/domain"
)

// ListExpensesFilter carries all query parameters for listing expenses.
// Scope is always enforced by the service layer before the repository runs.
type ListExpensesFilter struct {
	Scope    Scope
	Category string // optional: filter by category name
	Page     int    // 1-based
	Limit    int    // max rows per page (capped by the service)
}

// ExpenseRepository defines persistence operations for expense records.
type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	FindByID(ctx context.Context, id int64) (*domain.Expense, error)
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, id int64) error
	// List returns a page of expenses matching filter, newest date first,
	// plus the total count of matching rows.
	List(ctx context.Context, filter ListExpensesFilter) ([]*domain.Expense, int64, error)
}
