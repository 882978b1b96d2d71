package ports

import (
	"context"
	"time"

	"github.com/spendwise/expense-system/internal/core/domain"
)

// CreateExpenseInput carries all data needed to record a new expense.
// A zero Date defaults to today.
type CreateExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Date        time.Time
}

// UpdateExpenseInput carries the replacement fields for an existing expense.
type UpdateExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Date        time.Time
}

// ListExpensesInput carries the parameters for the list endpoint. Scope is
// derived from the actor, never from the request.
type ListExpensesInput struct {
	Category string
	Page     int
	Limit    int
}

// ListExpensesResult is returned by List.
type ListExpensesResult struct {
	Items      []*domain.Expense
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ExpenseService defines the ledger use cases. Mutations are permitted only
// for the owning user or an admin.
type ExpenseService interface {
	Create(ctx context.Context, actor Actor, in CreateExpenseInput) (*domain.Expense, error)
	Get(ctx context.Context, actor Actor, id int64) (*domain.Expense, error)
	Update(ctx context.Context, actor Actor, id int64, in UpdateExpenseInput) (*domain.Expense, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	List(ctx context.Context, actor Actor, in ListExpensesInput) (*ListExpensesResult, error)
}
