package models

import "github.com/shopspring/decimal"

// Summary aggregates a user's transactions. Expense keeps its sign: it is
// the sum of negative amounts, not a magnitude.
type Summary struct {
	Balance decimal.Decimal `json:"balance" example:"90"`
	Income  decimal.Decimal `json:"income" example:"120"`
	Expense decimal.Decimal `json:"expense" example:"-30"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Transaction deleted successfully!"`
}

type ErrorResponse struct {
	Message string `json:"message" example:"Internal server error!"`
}
