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

// CommissionHandler handles HTTP requests for commission entry endpoints.
type CommissionHandler struct {
	investmentService *service.InvestmentService
}

// NewCommissionHandler creates a new CommissionHandler with the provided service dependency.
func NewCommissionHandler(investmentService *service.InvestmentService) *CommissionHandler {
	return &CommissionHandler{
		investmentService: investmentService,
	}
}

// AddCommission handles POST requests to append a commission entry to an investment.
//
// Endpoint: POST /api/investments/{uuid}/commissions
// Response: 201 Created with CommissionEntry
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the investment does not exist
func (h *CommissionHandler) AddCommission(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.CreateCommissionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateCommission(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.investmentService.AddCommission(investmentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to add commission", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, entry)
}

// UpdateCommission handles PUT requests to update a commission entry.
//
// Endpoint: PUT /api/commissions/{uuid}
// Response: 200 OK with updated CommissionEntry
// Error: 404 Not Found if the entry does not exist
func (h *CommissionHandler) UpdateCommission(w http.ResponseWriter, r *http.Request) {
	commissionID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateCommissionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateCommission(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.investmentService.UpdateCommission(commissionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCommissionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCommissionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update commission", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entry)
}

// DeleteCommission handles DELETE requests to remove a commission entry.
//
// Endpoint: DELETE /api/commissions/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the entry does not exist
func (h *CommissionHandler) DeleteCommission(w http.ResponseWriter, r *http.Request) {
	commissionID := chi.URLParam(r, "uuid")

	err := h.investmentService.DeleteCommission(commissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCommissionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrCommissionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete commission", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
