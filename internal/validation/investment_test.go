package validation_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/itsdelka001/steam-investment-backend/internal/api/request"
	"github.com/itsdelka001/steam-investment-backend/internal/validation"
)

func validCreateRequest() request.CreateInvestmentRequest {
	return request.CreateInvestmentRequest{
		Name:        "AK-47 | Redline",
		Count:       1,
		BuyPrice:    decimal.RequireFromString("12.50"),
		BuyCurrency: "EUR",
		Category:    "CS2",
		BoughtDate:  "2024-01-15",
	}
}

// TestValidateCreateInvestment tests creation validation.
func TestValidateCreateInvestment(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		if err := validation.ValidateCreateInvestment(validCreateRequest()); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		err := validation.ValidateCreateInvestment(request.CreateInvestmentRequest{})

		if err == nil {
			t.Fatal("Expected validation to fail")
		}

		vErr, ok := err.(*validation.Error)
		if !ok {
			t.Fatalf("Expected *validation.Error, got %T", err)
		}

		for _, field := range []string{"name", "count", "buyPrice", "buyCurrency", "category", "boughtDate"} {
			if _, present := vErr.Fields[field]; !present {
				t.Errorf("Expected a message for field %q", field)
			}
		}
	})

	t.Run("rejects an unsupported currency", func(t *testing.T) {
		req := validCreateRequest()
		req.BuyCurrency = "JPY"

		err := validation.ValidateCreateInvestment(req)
		if err == nil || !strings.Contains(err.Error(), "invalid currency") {
			t.Errorf("Expected a currency error, got %v", err)
		}
	})

	t.Run("rejects an unsupported category", func(t *testing.T) {
		req := validCreateRequest()
		req.Category = "Fortnite"

		if err := validation.ValidateCreateInvestment(req); err == nil {
			t.Error("Expected a category error")
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		req := validCreateRequest()
		req.BoughtDate = "15/01/2024"

		if err := validation.ValidateCreateInvestment(req); err == nil {
			t.Error("Expected a date error")
		}
	})

	t.Run("rejects a non-positive commission rate", func(t *testing.T) {
		req := validCreateRequest()
		req.Commissions = []request.CreateCommissionRequest{{Rate: decimal.Zero}}

		if err := validation.ValidateCreateInvestment(req); err == nil {
			t.Error("Expected a commission rate error")
		}
	})
}

// TestValidateUpdateInvestment tests the partial update rules.
//
// WHY: Marking an item sold without a sell price and date would let metrics
// compute against a zero proceeds total; the pair must arrive together.
func TestValidateUpdateInvestment(t *testing.T) {
	sold := true
	price := decimal.RequireFromString("15.50")
	date := "2024-03-01"

	t.Run("accepts an empty update", func(t *testing.T) {
		if err := validation.ValidateUpdateInvestment(request.UpdateInvestmentRequest{}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("selling requires price and date together", func(t *testing.T) {
		err := validation.ValidateUpdateInvestment(request.UpdateInvestmentRequest{Sold: &sold})

		if err == nil {
			t.Fatal("Expected validation to fail")
		}

		vErr := err.(*validation.Error)
		if _, present := vErr.Fields["sellPrice"]; !present {
			t.Error("Expected a sellPrice message")
		}
		if _, present := vErr.Fields["sellDate"]; !present {
			t.Error("Expected a sellDate message")
		}
	})

	t.Run("accepts a complete sale", func(t *testing.T) {
		err := validation.ValidateUpdateInvestment(request.UpdateInvestmentRequest{
			Sold: &sold, SellPrice: &price, SellDate: &date,
		})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects a negative current price", func(t *testing.T) {
		negative := decimal.RequireFromString("-1")

		err := validation.ValidateUpdateInvestment(request.UpdateInvestmentRequest{
			CurrentPrice: &negative,
		})
		if err == nil {
			t.Error("Expected a currentPrice error")
		}
	})
}
