package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/itsdelka001/steam-investment-backend/internal/repository"
)

// InvestmentBuilder provides a fluent interface for creating test investments.
//
// Example usage:
//
//	// Simple creation with defaults
//	inv := testutil.NewInvestment().Build(t, db)
//
//	// A sold lot with a custom fee
//	inv := testutil.NewInvestment().
//	    WithBuyPrice("10.00").
//	    SoldFor("15.00", "2024-03-01").
//	    WithCommission("15", "Steam Market fee").
//	    Build(t, db)
type InvestmentBuilder struct {
	Investment model.Investment
}

// NewInvestment creates an InvestmentBuilder with sensible defaults: one
// unsold CS2 item bought for 10 EUR, no commissions.
func NewInvestment() *InvestmentBuilder {
	return &InvestmentBuilder{
		Investment: model.Investment{
			ID:             MakeID(),
			Name:           "Test Case",
			MarketHashName: "Test Case",
			Count:          1,
			BuyPrice:       decimal.NewFromInt(10),
			BuyCurrency:    model.BaseCurrency,
			Category:       "CS2",
			BoughtDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

// WithID sets a custom ID.
func (b *InvestmentBuilder) WithID(id string) *InvestmentBuilder {
	b.Investment.ID = id
	return b
}

// WithName sets a custom item name, marker characters included.
func (b *InvestmentBuilder) WithName(name string) *InvestmentBuilder {
	b.Investment.Name = name
	b.Investment.MarketHashName = name
	return b
}

// WithCategory sets a custom category.
func (b *InvestmentBuilder) WithCategory(category string) *InvestmentBuilder {
	b.Investment.Category = category
	return b
}

// WithCount sets the number of units in the lot.
func (b *InvestmentBuilder) WithCount(count int64) *InvestmentBuilder {
	b.Investment.Count = count
	return b
}

// WithBuyPrice sets the per-unit buy price from a decimal string.
func (b *InvestmentBuilder) WithBuyPrice(price string) *InvestmentBuilder {
	b.Investment.BuyPrice = decimal.RequireFromString(price)
	return b
}

// WithBuyCurrency sets the purchase currency.
func (b *InvestmentBuilder) WithBuyCurrency(currency string) *InvestmentBuilder {
	b.Investment.BuyCurrency = currency
	return b
}

// WithBoughtDate sets the purchase date from a YYYY-MM-DD string.
func (b *InvestmentBuilder) WithBoughtDate(date string) *InvestmentBuilder {
	b.Investment.BoughtDate = mustDate(date)
	return b
}

// WithCurrentPrice sets a known market price in the base currency.
func (b *InvestmentBuilder) WithCurrentPrice(price string) *InvestmentBuilder {
	p := decimal.RequireFromString(price)
	b.Investment.CurrentPrice = &p
	return b
}

// SoldFor marks the lot sold at the given per-unit price on the given date.
func (b *InvestmentBuilder) SoldFor(price, date string) *InvestmentBuilder {
	b.Investment.Sold = true
	b.Investment.SellPrice = decimal.RequireFromString(price)
	d := mustDate(date)
	b.Investment.SellDate = &d
	return b
}

// WithCommission appends a commission entry with the given percentage rate.
func (b *InvestmentBuilder) WithCommission(rate, note string) *InvestmentBuilder {
	b.Investment.Commissions = append(b.Investment.Commissions, model.CommissionEntry{
		ID:           MakeID(),
		InvestmentID: b.Investment.ID,
		Rate:         decimal.RequireFromString(rate),
		Note:         note,
		Position:     len(b.Investment.Commissions),
	})
	return b
}

// Value returns the built investment without persisting it. Useful for the
// pure engine functions that never touch the database.
func (b *InvestmentBuilder) Value() model.Investment {
	return b.Investment
}

// Build persists the investment and its commissions and returns it.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) model.Investment {
	t.Helper()

	repo := repository.NewInvestmentRepository(db)
	if err := repo.Create(b.Investment); err != nil {
		t.Fatalf("Failed to create test investment: %v", err)
	}
	return b.Investment
}

func mustDate(date string) time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return d
}
