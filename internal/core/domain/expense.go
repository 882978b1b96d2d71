package domain

import "time"

// MaxDescriptionLen bounds the free-text description on an expense.
const MaxDescriptionLen = 200

// Expense is a single spending record owned by one user. Date is the calendar
// day the money was spent; CreatedAt is when the record was entered.
type Expense struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      int64     `json:"user_id"`
}
