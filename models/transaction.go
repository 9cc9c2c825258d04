package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger entry. Amount is signed: positive for
// income, negative for expenses.
type Transaction struct {
	ID        int             `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}
