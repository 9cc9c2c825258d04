package models

import "github.com/shopspring/decimal"

// CreateTransactionRequest is the body of POST /create. Amount is a pointer
// so that an explicit 0 is distinguishable from a missing field.
type CreateTransactionRequest struct {
	UserID   string           `json:"user_id"`
	Title    string           `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category string           `json:"category"`
}
