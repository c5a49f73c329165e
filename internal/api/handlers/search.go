package handlers

import (
	"errors"
	"net/http"

	"github.com/itsdelka001/steam-investment-backend/internal/api/response"
	"github.com/itsdelka001/steam-investment-backend/internal/apperrors"
	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
)

// SearchHandler handles HTTP requests for item autocomplete and the
// market-analysis passthrough.
type SearchHandler struct {
	searchService *service.SearchService
}

// NewSearchHandler creates a new SearchHandler with the provided service dependency.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search handles GET requests for item autocomplete. A request superseded by
// a newer query answers 204 No Content: the caller discards it quietly, it
// is not an error.
//
// Endpoint: GET /api/search?query={q}&category={category}
// Response: 200 OK with array of search results
// Response: 204 No Content if the request was superseded
// Error: 400 Bad Request if query or category is missing/invalid
// Error: 502 Bad Gateway if the provider call fails
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	category := r.URL.Query().Get("category")

	if query == "" {
		response.RespondError(w, http.StatusBadRequest, "query is required", "")
		return
	}
	if !model.ValidCategories[category] {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCategory.Error(), category)
		return
	}

	results, err := h.searchService.Search(r.Context(), query, category)
	if err != nil {
		if errors.Is(err, apperrors.ErrSearchSuperseded) {
			response.RespondJSON(w, http.StatusNoContent, nil)
			return
		}
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToSearchItems.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, results)
}

// MarketAnalysisRequest is the request body for the analysis passthrough.
type MarketAnalysisRequest struct {
	ItemName string `json:"itemName"`
	Category string `json:"category"`
}

// MarketAnalysisResponse carries the provider's opaque analysis text.
type MarketAnalysisResponse struct {
	Analysis string `json:"analysis"`
}

// MarketAnalysis handles POST requests for the provider's market-analysis
// text. The text is passed through untouched; nothing is computed locally.
//
// Endpoint: POST /api/market_analysis
// Response: 200 OK with MarketAnalysisResponse
// Error: 400 Bad Request if itemName or category is missing/invalid
// Error: 502 Bad Gateway if the provider call fails
func (h *SearchHandler) MarketAnalysis(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[MarketAnalysisRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.ItemName == "" {
		response.RespondError(w, http.StatusBadRequest, "itemName is required", "")
		return
	}
	if !model.ValidCategories[req.Category] {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCategory.Error(), req.Category)
		return
	}

	analysis, err := h.searchService.MarketAnalysis(r.Context(), req.ItemName, req.Category)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToRetrieveAnalysis.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, MarketAnalysisResponse{Analysis: analysis})
}
