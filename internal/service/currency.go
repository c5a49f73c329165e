package service

import (
	"context"
	"sync"

	"github.com/itsdelka001/steam-investment-backend/internal/exchangerate"
	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/shopspring/decimal"
)

// hundred is shared by every percentage computation in the engine.
var hundred = decimal.NewFromInt(100)

// Convert converts a monetary amount between currencies using a table of
// rates expressed as units of currency per one unit of the base currency
// (the base currency's own rate is 1).
//
// Conversions fail open: a same-currency conversion, or one where either
// currency is missing from the table, returns the amount unchanged. With an
// empty table (e.g. the startup rate refresh failed) every conversion is a
// no-op rather than an error.
func Convert(amount decimal.Decimal, from, to string, rates map[string]decimal.Decimal) decimal.Decimal {
	if from == to {
		return amount
	}

	fromRate, fromOK := rates[from]
	toRate, toOK := rates[to]
	if !fromOK || !toOK || fromRate.IsZero() {
		return amount
	}

	// Normalize to base, then scale to the target currency.
	return amount.Div(fromRate).Mul(toRate)
}

// CurrencyService owns the shared conversion table. The table is fetched
// once at process start; a failed refresh keeps the previous (possibly
// empty) table in place.
type CurrencyService struct {
	client *exchangerate.Client

	mu    sync.RWMutex
	rates map[string]decimal.Decimal
}

// NewCurrencyService creates a CurrencyService with an empty rate table.
func NewCurrencyService(client *exchangerate.Client) *CurrencyService {
	return &CurrencyService{
		client: client,
		rates:  make(map[string]decimal.Decimal),
	}
}

// Refresh replaces the rate table with a fresh one from the exchange-rate
// source. On error the existing table is left untouched.
func (s *CurrencyService) Refresh(ctx context.Context) error {
	rates, err := s.client.Latest(ctx, model.BaseCurrency)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.rates = rates
	s.mu.Unlock()

	return nil
}

// Rates returns a copy of the current conversion table.
func (s *CurrencyService) Rates() map[string]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rates := make(map[string]decimal.Decimal, len(s.rates))
	for currency, rate := range s.rates {
		rates[currency] = rate
	}
	return rates
}

// SetRates replaces the table directly. Used by tests and startup seeding.
func (s *CurrencyService) SetRates(rates map[string]decimal.Decimal) {
	s.mu.Lock()
	s.rates = rates
	s.mu.Unlock()
}
