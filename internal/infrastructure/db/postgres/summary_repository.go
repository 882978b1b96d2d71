package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spendwise/expense-system/internal/core/ports"
)

// SummaryRepository runs the grouped aggregate queries behind the dashboard.
// It reads the same expenses table as ExpenseRepository but only ever sums
// and groups; it never mutates.
type SummaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// scopeWhere appends scope and optional date-bound predicates to args and
// returns the matching WHERE fragment. Zero from/to leave that side open.
func scopeWhere(scope ports.Scope, from, to time.Time, args []any) (string, []any) {
	where := "WHERE 1=1"
	if !scope.AllUsers {
		args = append(args, scope.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if !from.IsZero() {
		args = append(args, from)
		where += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		where += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	return where, args
}

func (r *SummaryRepository) SumAmount(ctx context.Context, scope ports.Scope, from, to time.Time) (float64, error) {
	where, args := scopeWhere(scope, from, to, nil)

	var total float64
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM expenses "+where, args...,
	).Scan(&total)
	if err != nil {
		return 0, storeErr("sum amount", err)
	}
	return total, nil
}

func (r *SummaryRepository) SumByCategory(ctx context.Context, scope ports.Scope, from, to time.Time) ([]ports.CategorySum, error) {
	where := "WHERE 1=1"
	var args []any
	if !scope.AllUsers {
		args = append(args, scope.UserID)
		where += fmt.Sprintf(" AND e.user_id = $%d", len(args))
	}
	if !from.IsZero() {
		args = append(args, from)
		where += fmt.Sprintf(" AND e.date >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		where += fmt.Sprintf(" AND e.date <= $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.name, c.color, SUM(e.amount)
		FROM expenses e
		JOIN categories c ON e.category = c.name `+where+`
		GROUP BY c.name, c.color`, args...)
	if err != nil {
		return nil, storeErr("sum by category", err)
	}
	defer rows.Close()

	var out []ports.CategorySum
	for rows.Next() {
		var cs ports.CategorySum
		if err := rows.Scan(&cs.Name, &cs.Color, &cs.Total); err != nil {
			return nil, storeErr("scan category sum", err)
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

func (r *SummaryRepository) SumByDay(ctx context.Context, scope ports.Scope, from, to time.Time) ([]ports.DaySum, error) {
	where, args := scopeWhere(scope, from, to, nil)

	rows, err := r.db.QueryContext(ctx, `
		SELECT to_char(date, 'YYYY-MM-DD'), SUM(amount)
		FROM expenses `+where+`
		GROUP BY date`, args...)
	if err != nil {
		return nil, storeErr("sum by day", err)
	}
	defer rows.Close()

	var out []ports.DaySum
	for rows.Next() {
		var ds ports.DaySum
		if err := rows.Scan(&ds.Day, &ds.Total); err != nil {
			return nil, storeErr("scan day sum", err)
		}
		out = append(out, ds)
	}
	return out, rows.Err()
}

func (r *SummaryRepository) SumByMonth(ctx context.Context, scope ports.Scope, year int) ([]ports.MonthSum, error) {
	where := "WHERE EXTRACT(YEAR FROM date) = $1"
	args := []any{year}
	if !scope.AllUsers {
		args = append(args, scope.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT EXTRACT(MONTH FROM date)::int, SUM(amount)
		FROM expenses `+where+`
		GROUP BY 1`, args...)
	if err != nil {
		return nil, storeErr("sum by month", err)
	}
	defer rows.Close()

	var out []ports.MonthSum
	for rows.Next() {
		var ms ports.MonthSum
		if err := rows.Scan(&ms.Month, &ms.Total); err != nil {
			return nil, storeErr("scan month sum", err)
		}
		out = append(out, ms)
	}
	return out, rows.Err()
}

func (r *SummaryRepository) SumByUser(ctx context.Context) ([]ports.UserSum, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, SUM(amount) FROM expenses GROUP BY user_id`)
	if err != nil {
		return nil, storeErr("sum by user", err)
	}
	defer rows.Close()

	var out []ports.UserSum
	for rows.Next() {
		var us ports.UserSum
		if err := rows.Scan(&us.UserID, &us.Total); err != nil {
			return nil, storeErr("scan user sum", err)
		}
		out = append(out, us)
	}
	return out, rows.Err()
}

// Recent returns the latest limit rows by creation time. The date column is
// selected as text; the summarizer decides what to do with values that do
// not parse.
func (r *SummaryRepository) Recent(ctx context.Context, scope ports.Scope, limit int) ([]ports.ExpenseRow, error) {
	where := "WHERE 1=1"
	args := []any{}
	if !scope.AllUsers {
		args = append(args, scope.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, amount, category, COALESCE(description, ''), to_char(date, 'YYYY-MM-DD'), created_at
		FROM expenses %s
		ORDER BY created_at DESC
		LIMIT $%d`, where, len(args)), args...)
	if err != nil {
		return nil, storeErr("recent expenses", err)
	}
	defer rows.Close()

	var out []ports.ExpenseRow
	for rows.Next() {
		var er ports.ExpenseRow
		if err := rows.Scan(&er.ID, &er.Amount, &er.Category, &er.Description, &er.Day, &er.CreatedAt); err != nil {
			return nil, storeErr("scan recent expense", err)
		}
		out = append(out, er)
	}
	return out, rows.Err()
}
