package handlers

import (
	"net/http"

	"github.com/itsdelka001/steam-investment-backend/internal/api/request"
	"github.com/itsdelka001/steam-investment-backend/internal/api/response"
	"github.com/itsdelka001/steam-investment-backend/internal/apperrors"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
)

// ArbitrageHandler handles HTTP requests for the arbitrage opportunity table.
type ArbitrageHandler struct {
	arbitrageService *service.ArbitrageService
}

// NewArbitrageHandler creates a new ArbitrageHandler with the provided service dependency.
func NewArbitrageHandler(arbitrageService *service.ArbitrageService) *ArbitrageHandler {
	return &ArbitrageHandler{
		arbitrageService: arbitrageService,
	}
}

// Opportunities handles GET requests for cross-market price spreads, ranked
// by the requested sort key after applying the optional ROI/price bounds.
//
// Endpoint: GET /api/arbitrage-opportunities?source=&destination=&limit=
//
//	&minRoi=&maxRoi=&minPrice=&maxPrice=&sort=
//
// Response: 200 OK with array of RankedOpportunity
// Error: 400 Bad Request if a query parameter does not parse
// Error: 502 Bad Gateway if the feed call fails
func (h *ArbitrageHandler) Opportunities(w http.ResponseWriter, r *http.Request) {
	query, err := request.ParseArbitrageQuery(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	ranked, err := h.arbitrageService.GetRankedOpportunities(
		r.Context(), query.Source, query.Destination, query.Limit, query.Filter, query.Sort)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToRetrieveOpportunities.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, ranked)
}
