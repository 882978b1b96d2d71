package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/spendwise/expense-system/internal/core/ports"
)

const (
	dayLayout       = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"

	defaultRecentLimit = 10
	trendDays          = 7
)

// SummaryService computes the dashboard aggregates. Store failures never
// reach the caller: each view logs the cause and degrades to zero/empty
// results so the dashboard always renders.
type SummaryService struct {
	repo   ports.SummaryRepository
	logger zerolog.Logger
}

func NewSummaryService(repo ports.SummaryRepository, logger zerolog.Logger) *SummaryService {
	return &SummaryService{repo: repo, logger: logger}
}

// monthWindow returns the inclusive [first day, last day] bounds of now's
// month. The end is the first day of the following month minus one day;
// AddDate carries December into January of the next year.
func monthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end
}

// MonthlyTotal sums all expenses in scope dated within now's month.
func (s *SummaryService) MonthlyTotal(ctx context.Context, scope ports.Scope, now time.Time) float64 {
	from, to := monthWindow(now)
	total, err := s.repo.SumAmount(ctx, scope, from, to)
	if err != nil {
		s.logger.Error().Err(err).Msg("monthly total query failed, rendering zero")
		return 0
	}
	return total
}

// RecentExpenses returns the latest limit entries for scope, newest first.
// A row whose stored date does not parse is logged and skipped; the rest of
// the list is still returned.
func (s *SummaryService) RecentExpenses(ctx context.Context, scope ports.Scope, limit int) []ports.RecentExpense {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := s.repo.Recent(ctx, scope, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("recent expenses query failed, rendering empty list")
		return []ports.RecentExpense{}
	}

	out := make([]ports.RecentExpense, 0, len(rows))
	for _, row := range rows {
		day, err := time.Parse(dayLayout, row.Day)
		if err != nil {
			s.logger.Warn().Err(err).Int64("expense_id", row.ID).Str("raw_date", row.Day).
				Msg("skipping expense with malformed date")
			continue
		}
		out = append(out, ports.RecentExpense{
			ID:          row.ID,
			Amount:      row.Amount,
			Category:    row.Category,
			Description: row.Description,
			Date:        day.Format(dayLayout),
			CreatedAt:   row.CreatedAt.UTC().Format(timestampLayout),
		})
	}
	return out
}

// CategoryBreakdown returns one entry per category with at least one expense
// in now's month, ordered by category name.
func (s *SummaryService) CategoryBreakdown(ctx context.Context, scope ports.Scope, now time.Time) []ports.CategoryTotal {
	from, to := monthWindow(now)
	sums, err := s.repo.SumByCategory(ctx, scope, from, to)
	if err != nil {
		s.logger.Error().Err(err).Msg("category breakdown query failed, rendering empty list")
		return []ports.CategoryTotal{}
	}

	out := make([]ports.CategoryTotal, 0, len(sums))
	for _, cs := range sums {
		out = append(out, ports.CategoryTotal{Name: cs.Name, Total: cs.Total, Color: cs.Color})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DailyTrend returns exactly 7 entries covering [now-6 days, now], one per
// calendar day. Days without expenses carry 0.0: the dense day range is
// computed first, then backfilled from the sparse query result.
func (s *SummaryService) DailyTrend(ctx context.Context, scope ports.Scope, now time.Time) []ports.DailyPoint {
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -(trendDays - 1))

	byDay := make(map[string]float64, trendDays)
	sums, err := s.repo.SumByDay(ctx, scope, from, to)
	if err != nil {
		s.logger.Error().Err(err).Msg("daily trend query failed, rendering zeroes")
	} else {
		for _, ds := range sums {
			byDay[ds.Day] = ds.Total
		}
	}

	out := make([]ports.DailyPoint, 0, trendDays)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayLayout)
		out = append(out, ports.DailyPoint{Date: key, Amount: byDay[key]})
	}
	return out
}

// MonthlySeries returns exactly 12 entries, Jan..Dec, summing expenses in
// scope whose date falls in the given year. Empty months carry 0.0.
func (s *SummaryService) MonthlySeries(ctx context.Context, scope ports.Scope, year int) []ports.MonthlyPoint {
	byMonth := make(map[int]float64, 12)
	sums, err := s.repo.SumByMonth(ctx, scope, year)
	if err != nil {
		s.logger.Error().Err(err).Int("year", year).Msg("monthly series query failed, rendering zeroes")
	} else {
		for _, ms := range sums {
			byMonth[ms.Month] = ms.Total
		}
	}

	out := make([]ports.MonthlyPoint, 0, 12)
	for m := 1; m <= 12; m++ {
		out = append(out, ports.MonthlyPoint{
			Month:  time.Month(m).String()[:3],
			Amount: byMonth[m],
		})
	}
	return out
}
