package handler

import (
	"time"

	"github.com/spendwise/expense-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createExpenseRequest struct {
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required"`
	Description string  `json:"description" validate:"max=200"`
	Date        string  `json:"date"        validate:"omitempty,datetime=2006-01-02"`
}

type updateExpenseRequest struct {
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required"`
	Description string  `json:"description" validate:"max=200"`
	Date        string  `json:"date"        validate:"omitempty,datetime=2006-01-02"`
}

// Response-only types owned by the transport layer, so the JSON contract is
// not coupled to internal domain changes.

type expenseResponse struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
	UserID      int64     `json:"user_id"`
}

func toExpenseResponse(e *domain.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		CreatedAt:   e.CreatedAt,
		UserID:      e.UserID,
	}
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listExpensesResponse struct {
	Data       []expenseResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// parseDay converts an optional YYYY-MM-DD request field. The validator has
// already checked the format; a zero time means "not provided".
func parseDay(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return d
}
