package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/itsdelka001/steam-investment-backend/internal/repository"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
)

// MakeID generates a UUID string for use in tests.
func MakeID() string {
	return uuid.New().String()
}

// TestRates returns a fixed conversion table for deterministic tests.
// EUR is the base; the values are plausible but arbitrary.
func TestRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"EUR": decimal.NewFromInt(1),
		"USD": decimal.RequireFromString("1.08"),
		"GBP": decimal.RequireFromString("0.85"),
		"PLN": decimal.RequireFromString("4.30"),
		"UAH": decimal.RequireFromString("45.00"),
	}
}

// NewTestCurrencyService creates a CurrencyService pre-seeded with TestRates.
// It has no exchange-rate client, so Refresh must not be called on it.
func NewTestCurrencyService(t *testing.T) *service.CurrencyService {
	t.Helper()

	currency := service.NewCurrencyService(nil)
	currency.SetRates(TestRates())
	return currency
}

func NewTestInvestmentService(t *testing.T, db *sql.DB) *service.InvestmentService {
	t.Helper()

	investmentRepo := repository.NewInvestmentRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)

	return service.NewInvestmentService(
		investmentRepo,
		commissionRepo,
		NewTestCurrencyService(t),
	)
}

func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	settingsRepo := repository.NewSettingsRepository(db)

	// Empty key: tests exercise the plaintext path unless they build their
	// own service with a real fernet key.
	settingsService, err := service.NewSettingsService(settingsRepo, "")
	if err != nil {
		t.Fatalf("Failed to create settings service: %v", err)
	}
	return settingsService
}
