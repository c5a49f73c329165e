package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itsdelka001/steam-investment-backend/internal/api/request"
	"github.com/itsdelka001/steam-investment-backend/internal/api/response"
	"github.com/itsdelka001/steam-investment-backend/internal/apperrors"
	"github.com/itsdelka001/steam-investment-backend/internal/service"
	"github.com/itsdelka001/steam-investment-backend/internal/validation"
)

// InvestmentHandler handles HTTP requests for investment endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the investmentService.
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler with the provided service dependency.
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// Investments handles GET requests to retrieve all investments with derived
// metrics in the requested display currency.
//
// Endpoint: GET /api/investments?currency={code}
// Response: 200 OK with array of InvestmentResponse
// Error: 400 Bad Request if the currency code is unsupported
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) Investments(w http.ResponseWriter, r *http.Request) {
	currency, err := displayCurrency(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCurrency.Error(), err.Error())
		return
	}

	investments, err := h.investmentService.GetInvestments(currency)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// GetInvestment handles GET requests to retrieve a single investment by ID.
//
// Endpoint: GET /api/investments/{uuid}?currency={code}
// Response: 200 OK with InvestmentResponse
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the investment does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	currency, err := displayCurrency(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCurrency.Error(), err.Error())
		return
	}

	investment, err := h.investmentService.GetInvestment(investmentID, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// CreateInvestment handles POST requests to create a new investment.
// Validates the request body and seeds the default marketplace commission
// when the request carries no commission entries.
//
// Endpoint: POST /api/investments
// Response: 201 Created with Investment
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *InvestmentHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateInvestment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investment, err := h.investmentService.CreateInvestment(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateInvestment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, investment)
}

// UpdateInvestment handles PUT requests to partially update an investment,
// including marking it sold or unsold.
//
// Endpoint: PUT /api/investments/{uuid}
// Request Body: UpdateInvestmentRequest (all fields optional)
// Response: 200 OK with updated Investment
// Error: 400 Bad Request if the ID is invalid or validation fails
// Error: 404 Not Found if the investment does not exist
// Error: 500 Internal Server Error if the update fails
func (h *InvestmentHandler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateInvestment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investment, err := h.investmentService.UpdateInvestment(r.Context(), investmentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateInvestment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// DeleteInvestment handles DELETE requests to remove an investment.
//
// Endpoint: DELETE /api/investments/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the investment does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *InvestmentHandler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	err := h.investmentService.DeleteInvestment(r.Context(), investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteInvestment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Summary handles GET requests for the portfolio-wide aggregates.
//
// Endpoint: GET /api/investments/summary?currency={code}
// Response: 200 OK with PortfolioSummary
func (h *InvestmentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	currency, err := displayCurrency(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCurrency.Error(), err.Error())
		return
	}

	summary, err := h.investmentService.GetSummary(currency)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Analytics handles GET requests for the chart view models: the cumulative
// realized-profit series and the category breakdowns.
//
// Endpoint: GET /api/investments/analytics?currency={code}
// Response: 200 OK with PortfolioAnalytics
func (h *InvestmentHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	currency, err := displayCurrency(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCurrency.Error(), err.Error())
		return
	}

	analytics, err := h.investmentService.GetAnalytics(currency)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAnalytics.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, analytics)
}
