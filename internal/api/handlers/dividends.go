package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api/request"
	"github.com/MilenaFRocha/Controle-Acoes/internal/api/response"
	"github.com/MilenaFRocha/Controle-Acoes/internal/apperrors"
	"github.com/MilenaFRocha/Controle-Acoes/internal/service"
	"github.com/MilenaFRocha/Controle-Acoes/internal/validation"
)

// DividendHandler handles HTTP requests for payout endpoints.
type DividendHandler struct {
	dividendService *service.DividendService
}

// NewDividendHandler creates a new DividendHandler with the provided service dependency.
func NewDividendHandler(dividendService *service.DividendService) *DividendHandler {
	return &DividendHandler{
		dividendService: dividendService,
	}
}

// Dividends handles GET requests to list payouts, newest first.
//
// Endpoint: GET /api/dividend
// Response: 200 OK with array of Dividend
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) Dividends(w http.ResponseWriter, _ *http.Request) {
	dividends, err := h.dividendService.GetDividends()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDividends.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, dividends)
}

// DividendTotal handles GET requests for the cumulative payout sum.
//
// Endpoint: GET /api/dividend/total
// Response: 200 OK with {"total": <sum>}
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) DividendTotal(w http.ResponseWriter, _ *http.Request) {
	total, err := h.dividendService.GetDividendTotal()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDividends.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]float64{"total": total})
}

// CreateDividend handles POST requests to record a payout.
//
// Endpoint: POST /api/dividend
// Request Body: CreateDividendRequest (ticker, date, type, value)
// Response: 201 Created with Dividend
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *DividendHandler) CreateDividend(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateDividendRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateDividend(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	dividend, err := h.dividendService.CreateDividend(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create dividend", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, dividend)
}

// DeleteDividend handles DELETE requests to remove a payout record.
//
// Endpoint: DELETE /api/dividend/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if dividend ID is invalid (validated by middleware)
// Error: 404 Not Found if dividend not found
// Error: 500 Internal Server Error if deletion fails
func (h *DividendHandler) DeleteDividend(w http.ResponseWriter, r *http.Request) {
	dividendID := chi.URLParam(r, "uuid")

	err := h.dividendService.DeleteDividend(r.Context(), dividendID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDividendNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDividendNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete dividend", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
