package handlers

import (
	"net/http"

	"github.com/itsdelka001/steam-investment-backend/internal/api/response"
	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
	"github.com/shopspring/decimal"
)

// RatesHandler exposes the current conversion table.
type RatesHandler struct {
	currencyService *service.CurrencyService
}

// NewRatesHandler creates a new RatesHandler with the provided service dependency.
func NewRatesHandler(currencyService *service.CurrencyService) *RatesHandler {
	return &RatesHandler{
		currencyService: currencyService,
	}
}

// RatesResponse carries the base currency and the conversion table. An
// empty table means the startup refresh failed and conversions currently
// no-op.
type RatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Rates handles GET requests for the conversion table.
//
// Endpoint: GET /api/rates
// Response: 200 OK with RatesResponse
func (h *RatesHandler) Rates(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, RatesResponse{
		Base:  model.BaseCurrency,
		Rates: h.currencyService.Rates(),
	})
}
