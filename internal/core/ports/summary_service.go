package ports

import (
	"context"
	"time"
)

// RecentExpense is a flat, serialization-ready view of one ledger row.
type RecentExpense struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date"`       // YYYY-MM-DD
	CreatedAt   string  `json:"created_at"` // YYYY-MM-DD HH:MM:SS
}

// CategoryTotal is one slice of the current-month category breakdown.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Color string  `json:"color"`
}

// DailyPoint is one day of the 7-day spending trend.
type DailyPoint struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Amount float64 `json:"amount"`
}

// MonthlyPoint is one month of the Jan..Dec spending series.
type MonthlyPoint struct {
	Month  string  `json:"month"` // 3-letter abbreviation
	Amount float64 `json:"amount"`
}

// SummaryService computes the dashboard aggregates for a scope and a
// reference instant. None of the operations return an error: the dashboard
// must always render, so store failures degrade to zero/empty results and
// are logged where they occur.
type SummaryService interface {
	MonthlyTotal(ctx context.Context, scope Scope, now time.Time) float64
	RecentExpenses(ctx context.Context, scope Scope, limit int) []RecentExpense
	CategoryBreakdown(ctx context.Context, scope Scope, now time.Time) []CategoryTotal
	DailyTrend(ctx context.Context, scope Scope, now time.Time) []DailyPoint
	MonthlySeries(ctx context.Context, scope Scope, year int) []MonthlyPoint
}
