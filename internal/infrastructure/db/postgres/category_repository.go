package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/spendwise/expense-system/internal/core/domain"
)

// CategoryRepository persists categories in PostgreSQL. The multi-step
// writes (rename, delete-and-reassign) each run inside one transaction so a
// mid-flight failure rolls back both the category row and the expense rows
// referencing it.
type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name, color) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Color,
	)

	created := *c
	if err := row.Scan(&created.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCategoryExists
		}
		return nil, storeErr("insert category", err)
	}
	return &created, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.findOne(ctx, `SELECT id, name, color FROM categories WHERE id = $1`, id)
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.findOne(ctx, `SELECT id, name, color FROM categories WHERE name = $1`, name)
}

func (r *CategoryRepository) findOne(ctx context.Context, query string, arg any) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, storeErr("find category", err)
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM categories ORDER BY name`)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	defer rows.Close()

	var out []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, storeErr("scan category", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, storeErr("count categories", err)
	}
	return n, nil
}

// Rename updates the category row and rewrites the name on every referencing
// expense in the same transaction. The name-keyed foreign key is deferred,
// so the pair of updates is checked at commit.
func (r *CategoryRepository) Rename(ctx context.Context, id int64, newName, newColor string) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		var oldName string
		err := tx.QueryRowContext(ctx,
			`SELECT name FROM categories WHERE id = $1 FOR UPDATE`, id,
		).Scan(&oldName)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCategoryNotFound
		}
		if err != nil {
			return storeErr("lock category", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE categories SET name = $1, color = $2 WHERE id = $3`,
			newName, newColor, id,
		); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrCategoryExists
			}
			return storeErr("rename category", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE expenses SET category = $1 WHERE category = $2`,
			newName, oldName,
		); err != nil {
			return storeErr("reassign expenses on rename", err)
		}
		return nil
	})
}

// DeleteAndReassign moves all referencing expenses to Uncategorized
// (creating it if absent) and deletes the row, atomically.
func (r *CategoryRepository) DeleteAndReassign(ctx context.Context, id int64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		var name string
		err := tx.QueryRowContext(ctx,
			`SELECT name FROM categories WHERE id = $1 FOR UPDATE`, id,
		).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCategoryNotFound
		}
		if err != nil {
			return storeErr("lock category", err)
		}

		if name != domain.UncategorizedName {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO categories (name, color) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
				domain.UncategorizedName, domain.UncategorizedColor,
			); err != nil {
				return storeErr("ensure uncategorized", err)
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE expenses SET category = $1 WHERE category = $2`,
				domain.UncategorizedName, name,
			); err != nil {
				return storeErr("reassign expenses on delete", err)
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
			return storeErr("delete category", err)
		}
		return nil
	})
}

func (r *CategoryRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin tx", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return storeErr("commit tx", err)
	}
	return nil
}
