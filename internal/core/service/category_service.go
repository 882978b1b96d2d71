package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/spendwise/expense-system/internal/core/domain"
	"github.com/spendwise/expense-system/internal/core/ports"
)

// CategoryService implements the category registry. Uniqueness is enforced
// by name; deleting or renaming a category carries its expenses along in the
// same transaction, so a name-keyed reference is never left dangling.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, name, color string) (*domain.Category, error) {
	if color == "" {
		color = domain.DefaultCategoryColor
	}

	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, domain.ErrCategoryExists
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Category{Name: name, Color: color})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category", name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Rename(ctx context.Context, id int64, newName, newColor string) (*domain.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if newColor == "" {
		newColor = c.Color
	}

	if existing, err := s.repo.FindByName(ctx, newName); err == nil && existing.ID != id {
		return nil, domain.ErrCategoryExists
	} else if err != nil && !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	if err := s.repo.Rename(ctx, id, newName, newColor); err != nil {
		s.logger.Error().Err(err).Str("category", c.Name).Str("new_name", newName).Msg("rename failed")
		return nil, err
	}

	s.logger.Info().Str("category", c.Name).Str("new_name", newName).Msg("category renamed")
	return &domain.Category{ID: id, Name: newName, Color: newColor}, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteAndReassign(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("category", c.Name).Msg("delete failed")
		return err
	}

	s.logger.Info().Str("category", c.Name).Msg("category deleted, expenses moved to Uncategorized")
	return nil
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}
