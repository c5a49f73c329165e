package service

import (
	"math"
	"time"

	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/shopspring/decimal"
)

// CalculateMetrics computes the derived per-item values for one investment,
// denominated in the display currency.
//
// Valuation rules:
//   - totalBuyValue: buy price converted from the buy currency, times count.
//   - totalCurrentValue: for sold items the sell total (sell price is in the
//     buy currency); for active items the current market total (current price
//     is always in the base currency); an active item with no known current
//     price is valued at cost, i.e. zero assumed profit.
//   - netProfit: gross profit minus commission on the proceeds side.
//   - roiPercent: zero when totalBuyValue is zero, never a division by zero.
func CalculateMetrics(inv model.Investment, displayCurrency string, rates map[string]decimal.Decimal) model.InvestmentMetrics {
	count := decimal.NewFromInt(inv.Count)

	totalBuyValue := Convert(inv.BuyPrice, inv.BuyCurrency, displayCurrency, rates).Mul(count)

	var totalCurrentValue decimal.Decimal
	switch {
	case inv.Sold:
		totalCurrentValue = Convert(inv.SellPrice, inv.BuyCurrency, displayCurrency, rates).Mul(count)
	case inv.CurrentPrice != nil:
		totalCurrentValue = Convert(*inv.CurrentPrice, model.BaseCurrency, displayCurrency, rates).Mul(count)
	default:
		totalCurrentValue = totalBuyValue
	}

	grossProfit := totalCurrentValue.Sub(totalBuyValue)
	netProfit := NetProfitAfterCommission(grossProfit, totalCurrentValue, inv.Commissions)

	roiPercent := decimal.Zero
	if totalBuyValue.IsPositive() {
		roiPercent = netProfit.Div(totalBuyValue).Mul(hundred)
	}

	return model.InvestmentMetrics{
		TotalBuyValue:     totalBuyValue,
		TotalCurrentValue: totalCurrentValue,
		GrossProfit:       grossProfit,
		NetProfit:         netProfit,
		RoiPercent:        roiPercent,
	}
}

// Summarize aggregates a snapshot of investments into portfolio-wide
// figures, partitioned into sold and active subsets. All monetary values are
// in the display currency.
//
// Fees are only counted once realized: totalFeesPaid covers sold items'
// commission on their sell total; projected fees on active items are not
// included.
func Summarize(investments []model.Investment, displayCurrency string, rates map[string]decimal.Decimal) model.PortfolioSummary {
	summary := model.PortfolioSummary{
		Currency:                displayCurrency,
		TotalInvestment:         decimal.Zero,
		TotalInvestmentInSold:   decimal.Zero,
		TotalInvestmentInActive: decimal.Zero,
		TotalRealizedProfit:     decimal.Zero,
		TotalMarketValue:        decimal.Zero,
		CurrentUnrealizedProfit: decimal.Zero,
		TotalFeesPaid:           decimal.Zero,
		RealizedROI:             decimal.Zero,
		UnrealizedROI:           decimal.Zero,
		AverageHoldingDays:      decimal.Zero,
	}

	var totalHoldingDays int64
	var soldCount int64

	for _, inv := range investments {
		m := CalculateMetrics(inv, displayCurrency, rates)

		summary.TotalInvestment = summary.TotalInvestment.Add(m.TotalBuyValue)

		if inv.Sold {
			summary.TotalInvestmentInSold = summary.TotalInvestmentInSold.Add(m.TotalBuyValue)
			summary.TotalRealizedProfit = summary.TotalRealizedProfit.Add(m.NetProfit)

			fees := m.TotalCurrentValue.Mul(TotalCommissionRate(inv.Commissions)).Div(hundred)
			summary.TotalFeesPaid = summary.TotalFeesPaid.Add(fees)

			if inv.SellDate != nil {
				totalHoldingDays += holdingDays(inv.BoughtDate, *inv.SellDate)
			}
			soldCount++
		} else {
			summary.TotalInvestmentInActive = summary.TotalInvestmentInActive.Add(m.TotalBuyValue)
			summary.TotalMarketValue = summary.TotalMarketValue.Add(m.TotalCurrentValue)
		}
	}

	summary.CurrentUnrealizedProfit = summary.TotalMarketValue.Sub(summary.TotalInvestmentInActive)

	if summary.TotalInvestmentInSold.IsPositive() {
		summary.RealizedROI = summary.TotalRealizedProfit.Div(summary.TotalInvestmentInSold).Mul(hundred)
	}
	if summary.TotalInvestmentInActive.IsPositive() {
		summary.UnrealizedROI = summary.CurrentUnrealizedProfit.Div(summary.TotalInvestmentInActive).Mul(hundred)
	}
	if soldCount > 0 {
		summary.AverageHoldingDays = decimal.NewFromInt(totalHoldingDays).Div(decimal.NewFromInt(soldCount))
	}

	return summary
}

// holdingDays returns ceil(|sold - bought|) in days. The absolute difference
// means a sell date recorded before the buy date still yields a positive
// holding period instead of an error; the record is surfaced as-is.
func holdingDays(bought, sold time.Time) int64 {
	diff := sold.Sub(bought)
	if diff < 0 {
		diff = -diff
	}
	return int64(math.Ceil(diff.Hours() / 24))
}
