package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
	"github.com/itsdelka001/steam-investment-backend/internal/testutil"
)

// TestCumulativeProfitSeries tests the realized-profit time series.
//
// WHY: The chart behind the dashboard expects one point per sell date with a
// running total. Same-date sales must merge before accumulating, and unsold
// items must never contribute.
func TestCumulativeProfitSeries(t *testing.T) {
	rates := testutil.TestRates()

	t.Run("no sold items yields an empty series", func(t *testing.T) {
		active := testutil.NewInvestment().WithCurrentPrice("12").Value()

		series := service.CumulativeProfitSeries([]model.Investment{active}, "EUR", rates)

		assert.Empty(t, series)
	})

	t.Run("same-date sales merge into one point", func(t *testing.T) {
		// +3 and -1 on the same day collapse to a single +2 point.
		win := testutil.NewInvestment().
			WithBuyPrice("10").
			SoldFor("13", "2024-03-01").
			Value()
		loss := testutil.NewInvestment().
			WithBuyPrice("10").
			SoldFor("9", "2024-03-01").
			Value()

		series := service.CumulativeProfitSeries([]model.Investment{win, loss}, "EUR", rates)

		require.Len(t, series, 1)
		assert.Equal(t, "2024-03-01", series[0].Date)
		assert.True(t, series[0].CumulativeProfit.Equal(dec("2")), "got %s", series[0].CumulativeProfit)
	})

	t.Run("points accumulate in date order", func(t *testing.T) {
		later := testutil.NewInvestment().
			WithBuyPrice("10").
			SoldFor("14", "2024-03-10").
			Value()
		earlier := testutil.NewInvestment().
			WithBuyPrice("10").
			SoldFor("12", "2024-03-01").
			Value()

		series := service.CumulativeProfitSeries([]model.Investment{later, earlier}, "EUR", rates)

		require.Len(t, series, 2)
		assert.Equal(t, "2024-03-01", series[0].Date)
		assert.True(t, series[0].CumulativeProfit.Equal(dec("2")))
		assert.Equal(t, "2024-03-10", series[1].Date)
		assert.True(t, series[1].CumulativeProfit.Equal(dec("6")), "got %s", series[1].CumulativeProfit)
	})
}

// TestDistributionByCategory tests the invested-capital breakdown.
//
// WHY: Slices of the category pie must add up to the portfolio total, and
// categories with no items must be absent rather than zero.
func TestDistributionByCategory(t *testing.T) {
	rates := testutil.TestRates()

	t.Run("sums buy value per category", func(t *testing.T) {
		investments := []model.Investment{
			testutil.NewInvestment().WithCategory("CS2").WithBuyPrice("10").Value(),
			testutil.NewInvestment().WithCategory("CS2").WithBuyPrice("5").Value(),
			testutil.NewInvestment().WithCategory("Dota 2").WithBuyPrice("7").Value(),
		}

		dist := service.DistributionByCategory(investments, "EUR", rates)

		require.Len(t, dist, 2)
		assert.True(t, dist["CS2"].Equal(dec("15")), "CS2 %s", dist["CS2"])
		assert.True(t, dist["Dota 2"].Equal(dec("7")), "Dota 2 %s", dist["Dota 2"])
	})

	t.Run("slices sum to the portfolio total", func(t *testing.T) {
		investments := []model.Investment{
			testutil.NewInvestment().WithCategory("CS2").WithBuyPrice("12.50").Value(),
			testutil.NewInvestment().WithCategory("Rust").WithBuyPrice("3.25").WithCount(4).Value(),
			testutil.NewInvestment().WithCategory("TF2").WithBuyPrice("1").Value(),
		}

		dist := service.DistributionByCategory(investments, "EUR", rates)
		summary := service.Summarize(investments, "EUR", rates)

		total := dec("0")
		for _, v := range dist {
			total = total.Add(v)
		}
		assert.True(t, total.Equal(summary.TotalInvestment),
			"distribution %s vs total %s", total, summary.TotalInvestment)
	})

	t.Run("empty categories are omitted", func(t *testing.T) {
		dist := service.DistributionByCategory(nil, "EUR", rates)

		assert.Empty(t, dist)
	})
}

// TestProfitByCategory tests the per-category net profit breakdown.
func TestProfitByCategory(t *testing.T) {
	rates := testutil.TestRates()

	t.Run("mixes realized and unrealized profit per category", func(t *testing.T) {
		investments := []model.Investment{
			testutil.NewInvestment().WithCategory("CS2").
				WithBuyPrice("10").SoldFor("15", "2024-02-01").Value(),
			testutil.NewInvestment().WithCategory("CS2").
				WithBuyPrice("10").WithCurrentPrice("11").Value(),
			testutil.NewInvestment().WithCategory("Steam").
				WithBuyPrice("20").SoldFor("18", "2024-02-05").Value(),
		}

		profit := service.ProfitByCategory(investments, "EUR", rates)

		require.Len(t, profit, 2)
		assert.True(t, profit["CS2"].Equal(dec("6")), "CS2 %s", profit["CS2"])
		assert.True(t, profit["Steam"].Equal(dec("-2")), "Steam %s", profit["Steam"])
	})
}
