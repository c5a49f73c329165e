package model

import "github.com/shopspring/decimal"

// ArbitrageOpportunity is one cross-market price spread from the external
// feed. All prices share a single reference currency; no conversion is
// applied to them. Opportunities are ephemeral and never persisted.
type ArbitrageOpportunity struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Image        string          `json:"image,omitempty"`
	SourceMarket string          `json:"sourceMarket"`
	DestMarket   string          `json:"destMarket"`
	SourcePrice  decimal.Decimal `json:"sourcePrice"`
	DestPrice    decimal.Decimal `json:"destPrice"`
	Fees         decimal.Decimal `json:"fees"`
}

// RankedOpportunity is an opportunity with its computed spread economics.
type RankedOpportunity struct {
	ArbitrageOpportunity
	NetProfit decimal.Decimal `json:"netProfit"`
	Roi       decimal.Decimal `json:"roi"`
}

// Arbitrage sort keys. An unrecognized key preserves feed order.
const (
	ArbitrageSortNetProfit   = "netProfit"
	ArbitrageSortRoi         = "roi"
	ArbitrageSortSourcePrice = "sourcePrice"
)

// ArbitrageFilter bounds the ranked list. Nil fields impose no constraint.
type ArbitrageFilter struct {
	MinRoi   *decimal.Decimal
	MaxRoi   *decimal.Decimal
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}
