package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Balance       decimal.Decimal  `json:"balance"`
	IsLoanAccount *bool            `json:"is_loan_account,omitempty"`
	TotalAmount   *decimal.Decimal `json:"total_amount,omitempty"`
	InterestRate  *float64         `json:"interest_rate,omitempty"`
	StartDate     *time.Time       `json:"start_date,omitempty"`
	EndDate       *time.Time       `json:"end_date,omitempty"`
	BankID        *int64           `json:"bank_id,omitempty"`
	AccountTypeID *int64           `json:"account_type_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
