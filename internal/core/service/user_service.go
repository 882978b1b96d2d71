package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/spendwise/expense-system/internal/core/domain"
	"github.com/spendwise/expense-system/internal/core/ports"
)

// UserService implements admin-only user management and the admin dashboard
// overview.
type UserService struct {
	users      ports.UserRepository
	categories ports.CategoryRepository
	summaries  ports.SummaryRepository
	logger     zerolog.Logger
}

func NewUserService(users ports.UserRepository, categories ports.CategoryRepository, summaries ports.SummaryRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, categories: categories, summaries: summaries, logger: logger}
}

// List returns every account with its lifetime expense total.
func (s *UserService) List(ctx context.Context) ([]ports.UserWithTotal, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]float64, len(users))
	sums, err := s.summaries.SumByUser(ctx)
	if err != nil {
		// The user table is still useful without totals.
		s.logger.Warn().Err(err).Msg("per-user totals unavailable")
	} else {
		for _, us := range sums {
			totals[us.UserID] = us.Total
		}
	}

	out := make([]ports.UserWithTotal, 0, len(users))
	for _, u := range users {
		out = append(out, ports.UserWithTotal{User: u, TotalExpenses: totals[u.ID]})
	}
	return out, nil
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}
	if err := validateCredentials(in.Username, in.Email, in.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).
		Str("role", created.Role).Msg("user created by admin")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	u.Username = in.Username
	u.Email = in.Email
	u.Role = in.Role
	if in.Password != "" {
		if len(in.Password) < minPasswordLen {
			return nil, domain.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return domain.ErrSelfDelete
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Str("username", u.Username).Msg("user deleted by admin")
	return nil
}

// Overview computes the admin dashboard headline figures across all users.
func (s *UserService) Overview(ctx context.Context, now time.Time) (*ports.AdminOverview, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	categoryCount, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	lifetime, err := s.summaries.SumAmount(ctx, ports.ScopeAll(), time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	from, to := monthWindow(now)
	monthly, err := s.summaries.SumAmount(ctx, ports.ScopeAll(), from, to)
	if err != nil {
		return nil, err
	}

	return &ports.AdminOverview{
		TotalUsers:      userCount,
		TotalExpenses:   lifetime,
		TotalCategories: categoryCount,
		MonthlyExpenses: monthly,
	}, nil
}
