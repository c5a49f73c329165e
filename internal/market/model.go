package market

import "github.com/shopspring/decimal"

// PriceResponse is the provider's answer to a current-price lookup.
// The price is always denominated in the base currency (EUR).
type PriceResponse struct {
	Price decimal.Decimal `json:"price"`
}

// SearchResult is one item returned by the autocomplete search endpoint.
type SearchResult struct {
	Name           string `json:"name"`
	IconURL        string `json:"iconUrl"`
	MarketHashName string `json:"marketHashName"`
}

// analysisRequest is the body sent to the market-analysis endpoint.
type analysisRequest struct {
	ItemName string `json:"itemName"`
	Category string `json:"category"`
}

// AnalysisResponse carries the opaque market-analysis text. The service
// passes it through untouched; nothing is computed from it locally.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
