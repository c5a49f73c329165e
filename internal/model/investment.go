package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the fixed reference currency. Every current price fetched
// from the market provider is denominated in it, regardless of the currency
// an item was bought in.
const BaseCurrency = "EUR"

// ValidCurrencies contains the supported currency codes.
var ValidCurrencies = map[string]bool{
	"EUR": true, "USD": true, "GBP": true, "PLN": true, "UAH": true,
}

// ValidCategories contains the supported item categories.
var ValidCategories = map[string]bool{
	"CS2": true, "Dota 2": true, "Rust": true, "TF2": true, "Steam": true,
}

// nameMarker is the decorative character users may embed in item names to
// render parts of the name bold in the dashboard. It is stripped only when
// deriving a clean display label, never when matching or aggregating.
const nameMarker = "*"

// Investment represents one purchased lot of an item.
//
// BuyPrice and SellPrice are per-unit amounts in BuyCurrency. CurrentPrice,
// when known, is a per-unit amount in BaseCurrency. A non-sold investment has
// SellPrice zero and SellDate nil.
type Investment struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	MarketHashName string            `json:"marketHashName"`
	Count          int64             `json:"count"`
	BuyPrice       decimal.Decimal   `json:"buyPrice"`
	BuyCurrency    string            `json:"buyCurrency"`
	CurrentPrice   *decimal.Decimal  `json:"currentPrice,omitempty"`
	Category       string            `json:"category"`
	BoughtDate     time.Time         `json:"boughtDate"`
	Sold           bool              `json:"sold"`
	SellPrice      decimal.Decimal   `json:"sellPrice"`
	SellDate       *time.Time        `json:"sellDate,omitempty"`
	Commissions    []CommissionEntry `json:"commissions"`
	Image          string            `json:"image,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// CleanName returns the display label with all bold markers removed.
func (i Investment) CleanName() string {
	return strings.ReplaceAll(i.Name, nameMarker, "")
}

// InvestmentMetrics contains the derived per-item values, all denominated in
// the caller's display currency.
type InvestmentMetrics struct {
	TotalBuyValue     decimal.Decimal `json:"totalBuyValue"`
	TotalCurrentValue decimal.Decimal `json:"totalCurrentValue"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	RoiPercent        decimal.Decimal `json:"roiPercent"`
}

// InvestmentResponse is an investment together with its derived metrics and
// the marker-free display label.
type InvestmentResponse struct {
	Investment
	DisplayName string            `json:"displayName"`
	Metrics     InvestmentMetrics `json:"metrics"`
}

// PortfolioSummary aggregates a snapshot of investments, partitioned into
// sold and active subsets. All monetary values are in the display currency.
type PortfolioSummary struct {
	Currency                string          `json:"currency"`
	TotalInvestment         decimal.Decimal `json:"totalInvestment"`
	TotalInvestmentInSold   decimal.Decimal `json:"totalInvestmentInSold"`
	TotalInvestmentInActive decimal.Decimal `json:"totalInvestmentInActive"`
	TotalRealizedProfit     decimal.Decimal `json:"totalRealizedProfit"`
	TotalMarketValue        decimal.Decimal `json:"totalMarketValue"`
	CurrentUnrealizedProfit decimal.Decimal `json:"currentUnrealizedProfit"`
	TotalFeesPaid           decimal.Decimal `json:"totalFeesPaid"`
	RealizedROI             decimal.Decimal `json:"realizedROI"`
	UnrealizedROI           decimal.Decimal `json:"unrealizedROI"`
	AverageHoldingDays      decimal.Decimal `json:"averageHoldingDays"`
}

// ProfitPoint is one entry of the cumulative realized-profit series.
// Date is formatted as YYYY-MM-DD.
type ProfitPoint struct {
	Date             string          `json:"date"`
	CumulativeProfit decimal.Decimal `json:"cumulativeProfit"`
}

// PortfolioAnalytics contains the derived time-series and categorical
// breakdowns for charting. Categories with no items are omitted rather than
// zero-filled.
type PortfolioAnalytics struct {
	Currency               string                     `json:"currency"`
	CumulativeProfitSeries []ProfitPoint              `json:"cumulativeProfitSeries"`
	DistributionByCategory map[string]decimal.Decimal `json:"distributionByCategory"`
	ProfitByCategory       map[string]decimal.Decimal `json:"profitByCategory"`
}
