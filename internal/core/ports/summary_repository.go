package ports

import (
	"context"
	"time"
)

// CategorySum is one group in a sum-by-category aggregate, joined against the
// category table for its display color.
type CategorySum struct {
	Name  string
	Color string
	Total float64
}

// DaySum is one group in a sum-by-day aggregate. Day is the stored calendar
// date rendered as YYYY-MM-DD.
type DaySum struct {
	Day   string
	Total float64
}

// MonthSum is one group in a sum-by-month aggregate. Month is 1..12.
type MonthSum struct {
	Month int
	Total float64
}

// UserSum is one group in a lifetime sum-by-user aggregate.
type UserSum struct {
	UserID int64
	Total  float64
}

// ExpenseRow is a raw ledger row as read back for the recent-expenses view.
// Day carries the stored calendar date as text so the summarizer decides how
// to treat a value that does not parse, instead of the whole query failing.
type ExpenseRow struct {
	ID          int64
	Amount      float64
	Category    string
	Description string
	Day         string
	CreatedAt   time.Time
}

// SummaryRepository exposes the filtered/grouped aggregates the dashboard
// needs. A zero from or to leaves that bound open.
type SummaryRepository interface {
	SumAmount(ctx context.Context, scope Scope, from, to time.Time) (float64, error)
	SumByCategory(ctx context.Context, scope Scope, from, to time.Time) ([]CategorySum, error)
	SumByDay(ctx context.Context, scope Scope, from, to time.Time) ([]DaySum, error)
	SumByMonth(ctx context.Context, scope Scope, year int) ([]MonthSum, error)
	SumByUser(ctx context.Context) ([]UserSum, error)
	Recent(ctx context.Context, scope Scope, limit int) ([]ExpenseRow, error)
}
