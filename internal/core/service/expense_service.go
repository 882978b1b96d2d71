package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/spendwise/expense-system/internal/core/domain"
	"github.com/spendwise/expense-system/internal/core/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ExpenseService implements the ledger: validated CRUD over expense records,
// scoped by ownership.
type ExpenseService struct {
	repo       ports.ExpenseRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewExpenseService(repo ports.ExpenseRepository, categories ports.CategoryRepository, logger zerolog.Logger) *ExpenseService {
	return &ExpenseService{repo: repo, categories: categories, logger: logger}
}

// validate checks the shared invariants of create and update: positive
// amount, bounded description, and a category that exists at write time.
func (s *ExpenseService) validate(ctx context.Context, amount float64, category, description string) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if len(description) > domain.MaxDescriptionLen {
		return domain.ErrDescriptionTooLong
	}
	if _, err := s.categories.FindByName(ctx, category); err != nil {
		return domain.ErrUnknownCategory
	}
	return nil
}

func (s *ExpenseService) Create(ctx context.Context, actor ports.Actor, in ports.CreateExpenseInput) (*domain.Expense, error) {
	if err := s.validate(ctx, in.Amount, in.Category, in.Description); err != nil {
		return nil, err
	}

	day := in.Date
	if day.IsZero() {
		now := time.Now().UTC()
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	created, err := s.repo.Create(ctx, &domain.Expense{
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        day,
		UserID:      actor.UserID,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", actor.UserID).Msg("failed to create expense")
		return nil, err
	}

	s.logger.Info().Int64("expense_id", created.ID).Int64("user_id", actor.UserID).
		Str("category", created.Category).Float64("amount", created.Amount).Msg("expense created")
	return created, nil
}

// fetchOwned loads the expense and enforces the ownership rule: only the
// owner or an admin may see or mutate it.
func (s *ExpenseService) fetchOwned(ctx context.Context, actor ports.Actor, id int64) (*domain.Expense, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && e.UserID != actor.UserID {
		return nil, domain.ErrNotOwner
	}
	return e, nil
}

func (s *ExpenseService) Get(ctx context.Context, actor ports.Actor, id int64) (*domain.Expense, error) {
	return s.fetchOwned(ctx, actor, id)
}

func (s *ExpenseService) Update(ctx context.Context, actor ports.Actor, id int64, in ports.UpdateExpenseInput) (*domain.Expense, error) {
	e, err := s.fetchOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in.Amount, in.Category, in.Description); err != nil {
		return nil, err
	}

	e.Amount = in.Amount
	e.Category = in.Category
	e.Description = in.Description
	if !in.Date.IsZero() {
		e.Date = in.Date
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error().Err(err).Int64("expense_id", id).Msg("failed to update expense")
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, actor ports.Actor, id int64) error {
	if _, err := s.fetchOwned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("expense_id", id).Msg("failed to delete expense")
		return err
	}
	s.logger.Info().Int64("expense_id", id).Int64("user_id", actor.UserID).Msg("expense deleted")
	return nil
}

// List returns a page of expenses, newest date first. Non-admin callers are
// always scoped to their own rows, whatever the request asked for.
func (s *ExpenseService) List(ctx context.Context, actor ports.Actor, in ports.ListExpensesInput) (*ports.ListExpensesResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	items, total, err := s.repo.List(ctx, ports.ListExpensesFilter{
		Scope:    actor.QueryScope(),
		Category: in.Category,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", actor.UserID).Msg("failed to list expenses")
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ports.ListExpensesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
