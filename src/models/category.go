package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Budget          *decimal.Decimal `json:"budget,omitempty"`
	RemainingBudget *decimal.Decimal `json:"remaining_budget,omitempty"`
	IsRollingBudget *bool            `json:"is_rolling_budget,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
