package request

import "github.com/shopspring/decimal"

// CreateInvestmentRequest represents the request body for creating an investment.
// MarketHashName defaults to Name when omitted. When Commissions is empty the
// default marketplace commission is seeded.
type CreateInvestmentRequest struct {
	Name           string                    `json:"name"`
	MarketHashName string                    `json:"marketHashName,omitempty"`
	Count          int64                     `json:"count"`
	BuyPrice       decimal.Decimal           `json:"buyPrice"`
	BuyCurrency    string                    `json:"buyCurrency"`
	Category       string                    `json:"category"`
	BoughtDate     string                    `json:"boughtDate"`
	Image          string                    `json:"image,omitempty"`
	Commissions    []CreateCommissionRequest `json:"commissions,omitempty"`
}

// UpdateInvestmentRequest represents a partial investment update; every field
// is optional. Setting Sold to true requires SellPrice and SellDate; setting
// it to false clears both.
type UpdateInvestmentRequest struct {
	Name           *string          `json:"name,omitempty"`
	MarketHashName *string          `json:"marketHashName,omitempty"`
	Count          *int64           `json:"count,omitempty"`
	BuyPrice       *decimal.Decimal `json:"buyPrice,omitempty"`
	BuyCurrency    *string          `json:"buyCurrency,omitempty"`
	CurrentPrice   *decimal.Decimal `json:"currentPrice,omitempty"`
	Category       *string          `json:"category,omitempty"`
	BoughtDate     *string          `json:"boughtDate,omitempty"`
	Sold           *bool            `json:"sold,omitempty"`
	SellPrice      *decimal.Decimal `json:"sellPrice,omitempty"`
	SellDate       *string          `json:"sellDate,omitempty"`
	Image          *string          `json:"image,omitempty"`
}
