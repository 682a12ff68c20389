package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry. Pointer fields are nullable in
// the database; a nil account or category id means the entry is
// unassigned.
type Transaction struct {
	ID              int64           `json:"id"`
	Description     *string         `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	IsExpense       *bool           `json:"is_expense,omitempty"`
	IsRecurring     *bool           `json:"is_recurring,omitempty"`
	RecurringDate   *int            `json:"recurring_date,omitempty"`
	AccountID       *int64          `json:"account_id,omitempty"`
	CategoryID      *int64          `json:"category_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
