package model

import "github.com/shopspring/decimal"

// CommissionEntry is one marketplace or payment fee attached to an
// investment. Rate is a percentage greater than zero. Position preserves
// insertion order for display; totals do not depend on it.
type CommissionEntry struct {
	ID           string          `json:"id"`
	InvestmentID string          `json:"investmentId"`
	Rate         decimal.Decimal `json:"rate"`
	Note         string          `json:"note"`
	Position     int             `json:"position"`
}

// DefaultCommissionRate is seeded on every investment created without
// explicit commissions. 15% matches the combined Steam Community Market fee.
var DefaultCommissionRate = decimal.NewFromInt(15)

// DefaultCommissionNote labels the seeded marketplace commission.
const DefaultCommissionNote = "Steam Market fee"
