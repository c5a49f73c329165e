package validation

import (
	"fmt"
	"strings"

	"github.com/itsdelka001/steam-investment-backend/internal/api/request"
	"github.com/itsdelka001/steam-investment-backend/internal/model"
)

// ValidateCreateInvestment validates an investment creation request.
//
// Required fields:
//   - name: non-empty
//   - count: positive integer
//   - buyPrice: positive
//   - buyCurrency: one of the supported currency set
//   - category: one of the supported category set
//   - boughtDate: YYYY-MM-DD
//
// Commission entries, when supplied, must each have a positive rate.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateInvestment(req request.CreateInvestmentRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.Count <= 0 {
		errors["count"] = "count must be positive"
	}

	if !req.BuyPrice.IsPositive() {
		errors["buyPrice"] = "buyPrice must be positive"
	}

	if !model.ValidCurrencies[req.BuyCurrency] {
		errors["buyCurrency"] = fmt.Sprintf("invalid currency: %s", req.BuyCurrency)
	}

	if !model.ValidCategories[req.Category] {
		errors["category"] = fmt.Sprintf("invalid category: %s", req.Category)
	}

	if strings.TrimSpace(req.BoughtDate) == "" {
		errors["boughtDate"] = "boughtDate is required"
	} else if _, err := ParseDate(req.BoughtDate); err != nil {
		errors["boughtDate"] = err.Error()
	}

	for i, c := range req.Commissions {
		if !c.Rate.IsPositive() {
			errors[fmt.Sprintf("commissions[%d].rate", i)] = "rate must be positive"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateInvestment validates a partial investment update.
// All fields are optional, but if provided, they must meet the same
// constraints as create. Marking an investment sold requires both a positive
// sellPrice and a sellDate in the same request unless already present.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateUpdateInvestment(req request.UpdateInvestmentRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	if req.Count != nil && *req.Count <= 0 {
		errors["count"] = "count must be positive"
	}

	if req.BuyPrice != nil && !req.BuyPrice.IsPositive() {
		errors["buyPrice"] = "buyPrice must be positive"
	}

	if req.BuyCurrency != nil && !model.ValidCurrencies[*req.BuyCurrency] {
		errors["buyCurrency"] = fmt.Sprintf("invalid currency: %s", *req.BuyCurrency)
	}

	if req.CurrentPrice != nil && req.CurrentPrice.IsNegative() {
		errors["currentPrice"] = "currentPrice cannot be negative"
	}

	if req.Category != nil && !model.ValidCategories[*req.Category] {
		errors["category"] = fmt.Sprintf("invalid category: %s", *req.Category)
	}

	if req.BoughtDate != nil {
		if _, err := ParseDate(*req.BoughtDate); err != nil {
			errors["boughtDate"] = err.Error()
		}
	}

	if req.Sold != nil && *req.Sold {
		if req.SellPrice == nil {
			errors["sellPrice"] = "sellPrice is required when marking sold"
		}
		if req.SellDate == nil {
			errors["sellDate"] = "sellDate is required when marking sold"
		}
	}

	if req.SellPrice != nil && !req.SellPrice.IsPositive() {
		errors["sellPrice"] = "sellPrice must be positive"
	}

	if req.SellDate != nil {
		if _, err := ParseDate(*req.SellDate); err != nil {
			errors["sellDate"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
