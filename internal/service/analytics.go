package service

import (
	"sort"

	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// CumulativeProfitSeries builds the realized-profit time series: sold items'
// net profit grouped by sell date (same-date entries summed), sorted by date
// ascending, then accumulated so each point is the total realized profit up
// to and including that date.
func CumulativeProfitSeries(investments []model.Investment, displayCurrency string, rates map[string]decimal.Decimal) []model.ProfitPoint {
	profitByDate := make(map[string]decimal.Decimal)

	for _, inv := range investments {
		if !inv.Sold || inv.SellDate == nil {
			continue
		}
		m := CalculateMetrics(inv, displayCurrency, rates)
		date := inv.SellDate.Format(dateLayout)
		profitByDate[date] = profitByDate[date].Add(m.NetProfit)
	}

	dates := make([]string, 0, len(profitByDate))
	for date := range profitByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]model.ProfitPoint, 0, len(dates))
	running := decimal.Zero
	for _, date := range dates {
		running = running.Add(profitByDate[date])
		series = append(series, model.ProfitPoint{Date: date, CumulativeProfit: running})
	}

	return series
}

// DistributionByCategory sums totalBuyValue per category across all items,
// sold and active, in the display currency. Categories with no items are
// omitted rather than zero-filled.
func DistributionByCategory(investments []model.Investment, displayCurrency string, rates map[string]decimal.Decimal) map[string]decimal.Decimal {
	distribution := make(map[string]decimal.Decimal)

	for _, inv := range investments {
		m := CalculateMetrics(inv, displayCurrency, rates)
		distribution[inv.Category] = distribution[inv.Category].Add(m.TotalBuyValue)
	}

	return distribution
}

// ProfitByCategory sums per-item net profit per category across all items,
// using the same formula as the per-item metrics: sold items on their sell
// side, active items on their current side.
func ProfitByCategory(investments []model.Investment, displayCurrency string, rates map[string]decimal.Decimal) map[string]decimal.Decimal {
	profit := make(map[string]decimal.Decimal)

	for _, inv := range investments {
		m := CalculateMetrics(inv, displayCurrency, rates)
		profit[inv.Category] = profit[inv.Category].Add(m.NetProfit)
	}

	return profit
}
