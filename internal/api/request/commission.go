package request

import "github.com/shopspring/decimal"

// CreateCommissionRequest represents the request body for adding a
// commission entry to an investment.
type CreateCommissionRequest struct {
	Rate decimal.Decimal `json:"rate"`
	Note string          `json:"note"`
}

// UpdateCommissionRequest represents a partial commission update.
type UpdateCommissionRequest struct {
	Rate *decimal.Decimal `json:"rate,omitempty"`
	Note *string          `json:"note,omitempty"`
}
