package handlers

import (
	"errors"
	"net/http"

	"github.com/itsdelka001/steam-investment-backend/internal/api/response"
	"github.com/itsdelka001/steam-investment-backend/internal/apperrors"
	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
	"github.com/shopspring/decimal"
)

// PriceHandler handles HTTP requests for price lookups and the bulk refresh.
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependency.
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// CurrentPriceResponse carries one price lookup result in the base currency.
type CurrentPriceResponse struct {
	Price decimal.Decimal `json:"price"`
}

// CurrentPrice handles GET requests to look up the latest market price of an
// item. The price is per unit, denominated in the base currency.
//
// Endpoint: GET /api/current_price?item_name={name}&category={category}
// Response: 200 OK with CurrentPriceResponse
// Error: 400 Bad Request if item_name or category is missing/invalid
// Error: 502 Bad Gateway if the market provider call fails
func (h *PriceHandler) CurrentPrice(w http.ResponseWriter, r *http.Request) {
	itemName := r.URL.Query().Get("item_name")
	category := r.URL.Query().Get("category")

	if itemName == "" {
		response.RespondError(w, http.StatusBadRequest, "item_name is required", "")
		return
	}
	if !model.ValidCategories[category] {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCategory.Error(), category)
		return
	}

	price, err := h.priceService.CurrentPrice(r.Context(), itemName, category)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToRetrievePrice.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, CurrentPriceResponse{Price: price})
}

// RefreshPrices handles POST requests to run the bulk price sweep over all
// unsold investments immediately, regardless of the auto-refresh flag.
//
// Endpoint: POST /api/prices/refresh
// Response: 200 OK with RefreshResult
// Error: 409 Conflict if a sweep is already running
// Error: 500 Internal Server Error if the sweep cannot start
func (h *PriceHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	result, err := h.priceService.RefreshAll(r.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshInProgress) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrRefreshInProgress.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRefreshPrices.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
