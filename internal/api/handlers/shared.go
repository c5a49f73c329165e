package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/itsdelka001/steam-investment-backend/internal/model"
)

// parseJSON decodes a request body into the given request type.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	return req, nil
}

// displayCurrency reads the optional ?currency= parameter. An absent
// parameter falls back to the base currency; an unsupported code is an
// error so amounts are never silently mislabelled.
func displayCurrency(r *http.Request) (string, error) {
	currency := r.URL.Query().Get("currency")
	if currency == "" {
		return model.BaseCurrency, nil
	}
	if !model.ValidCurrencies[currency] {
		return "", fmt.Errorf("unsupported currency: %s", currency)
	}
	return currency, nil
}
