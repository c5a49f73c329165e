package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/itsdelka001/steam-investment-backend/internal/service"
	"github.com/itsdelka001/steam-investment-backend/internal/testutil"
)

// TestConvert tests the currency conversion function.
//
// WHY: Every monetary figure in the API flows through Convert. The fail-open
// rules (same currency, missing rates, empty table) must hold exactly or a
// transient rate outage would corrupt every displayed value.
func TestConvert(t *testing.T) {
	rates := testutil.TestRates()

	t.Run("same currency returns amount unchanged", func(t *testing.T) {
		amount := decimal.RequireFromString("12.34")

		got := service.Convert(amount, "USD", "USD", rates)

		assert.True(t, got.Equal(amount), "expected %s, got %s", amount, got)
	})

	t.Run("converts through the base currency", func(t *testing.T) {
		// 108 USD -> 100 EUR -> 430 PLN with the fixture rates.
		amount := decimal.RequireFromString("108")

		got := service.Convert(amount, "USD", "PLN", rates)

		assert.True(t, got.Equal(decimal.RequireFromString("430")), "got %s", got)
	})

	t.Run("base to target multiplies by the target rate", func(t *testing.T) {
		amount := decimal.NewFromInt(10)

		got := service.Convert(amount, "EUR", "USD", rates)

		assert.True(t, got.Equal(decimal.RequireFromString("10.8")), "got %s", got)
	})

	t.Run("missing source rate is a no-op", func(t *testing.T) {
		amount := decimal.NewFromInt(5)

		got := service.Convert(amount, "JPY", "EUR", rates)

		assert.True(t, got.Equal(amount))
	})

	t.Run("missing target rate is a no-op", func(t *testing.T) {
		amount := decimal.NewFromInt(5)

		got := service.Convert(amount, "EUR", "JPY", rates)

		assert.True(t, got.Equal(amount))
	})

	t.Run("empty table is a no-op for every pair", func(t *testing.T) {
		amount := decimal.RequireFromString("99.99")

		got := service.Convert(amount, "USD", "EUR", map[string]decimal.Decimal{})

		assert.True(t, got.Equal(amount))
	})

	t.Run("zero source rate is a no-op instead of dividing by zero", func(t *testing.T) {
		broken := map[string]decimal.Decimal{
			"EUR": decimal.NewFromInt(1),
			"USD": decimal.Zero,
		}
		amount := decimal.NewFromInt(7)

		got := service.Convert(amount, "USD", "EUR", broken)

		assert.True(t, got.Equal(amount))
	})

	t.Run("round trip returns the original amount", func(t *testing.T) {
		amount := decimal.RequireFromString("250.50")

		there := service.Convert(amount, "EUR", "UAH", rates)
		back := service.Convert(there, "UAH", "EUR", rates)

		assert.True(t, back.Equal(amount), "round trip drifted: %s", back)
	})
}

// TestCurrencyService_Rates tests the shared rate table access.
//
// WHY: The table is read on every request and replaced by the scheduled
// refresh. Rates must hand out copies so a caller iterating the map never
// races a concurrent swap.
func TestCurrencyService_Rates(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		svc := service.NewCurrencyService(nil)

		assert.Empty(t, svc.Rates())
	})

	t.Run("returns a copy, not the internal map", func(t *testing.T) {
		svc := service.NewCurrencyService(nil)
		svc.SetRates(testutil.TestRates())

		rates := svc.Rates()
		rates["USD"] = decimal.NewFromInt(999)

		fresh := svc.Rates()
		assert.True(t, fresh["USD"].Equal(decimal.RequireFromString("1.08")),
			"mutating the returned map leaked into the service: %s", fresh["USD"])
	})

	t.Run("SetRates replaces the whole table", func(t *testing.T) {
		svc := service.NewCurrencyService(nil)
		svc.SetRates(testutil.TestRates())

		svc.SetRates(map[string]decimal.Decimal{"EUR": decimal.NewFromInt(1)})

		rates := svc.Rates()
		assert.Len(t, rates, 1)
		assert.Contains(t, rates, "EUR")
	})
}
