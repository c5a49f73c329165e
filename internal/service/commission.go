package service

import (
	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/shopspring/decimal"
)

// TotalCommissionRate sums the rates of all commission entries into a single
// percentage. Rates add up without compounding; the order of entries does not
// matter. An empty or nil list yields zero.
func TotalCommissionRate(commissions []model.CommissionEntry) decimal.Decimal {
	total := decimal.Zero
	for _, c := range commissions {
		total = total.Add(c.Rate)
	}
	return total
}

// NetProfitAfterCommission deducts the proportional commission on the
// proceeds side from the gross profit:
//
//	net = gross - totalTransactionValue * totalRate/100
//
// totalTransactionValue must be the proceeds side of the position: the sell
// total for sold items, the current market total otherwise, never the
// buy-side total. Per-item metrics and portfolio aggregates share this one
// function so the two cannot drift apart.
func NetProfitAfterCommission(grossProfit, totalTransactionValue decimal.Decimal, commissions []model.CommissionEntry) decimal.Decimal {
	rate := TotalCommissionRate(commissions)
	return grossProfit.Sub(totalTransactionValue.Mul(rate).Div(hundred))
}
