package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spendwise/expense-system/internal/core/domain"
	"github.com/spendwise/expense-system/internal/core/ports"
)

// ExpenseRepository persists expense records in PostgreSQL.
type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO expenses (amount, category, description, date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		e.Amount, e.Category, nullIfEmpty(e.Description), e.Date, e.UserID,
	)

	created := *e
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, storeErr("insert expense", err)
	}
	return &created, nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id int64) (*domain.Expense, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, amount, category, COALESCE(description, ''), date, created_at, user_id
		FROM expenses WHERE id = $1`, id,
	)

	var e domain.Expense
	if err := row.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.CreatedAt, &e.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, storeErr("find expense", err)
	}
	return &e, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE expenses SET amount = $1, category = $2, description = $3, date = $4
		WHERE id = $5`,
		e.Amount, e.Category, nullIfEmpty(e.Description), e.Date, e.ID,
	)
	if err != nil {
		return storeErr("update expense", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete expense", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context, filter ports.ListExpensesFilter) ([]*domain.Expense, int64, error) {
	where := "WHERE 1=1"
	var args []any

	if !filter.Scope.AllUsers {
		args = append(args, filter.Scope.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM expenses "+where, args...).Scan(&total); err != nil {
		return nil, 0, storeErr("count expenses", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT id, amount, category, COALESCE(description, ''), date, created_at, user_id
		FROM expenses %s
		ORDER BY date DESC, id DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, storeErr("list expenses", err)
	}
	defer rows.Close()

	var out []*domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.CreatedAt, &e.UserID); err != nil {
			return nil, 0, storeErr("scan expense", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr("list expenses", err)
	}
	return out, total, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
