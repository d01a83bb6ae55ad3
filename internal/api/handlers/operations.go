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

// OperationHandler handles HTTP requests for operation endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the operationService.
type OperationHandler struct {
	operationService *service.OperationService
}

// NewOperationHandler creates a new OperationHandler with the provided service dependency.
func NewOperationHandler(operationService *service.OperationService) *OperationHandler {
	return &OperationHandler{
		operationService: operationService,
	}
}

// History handles GET requests to retrieve the operation log, newest first.
//
// Endpoint: GET /api/operation
// Response: 200 OK with array of Operation
// Error: 500 Internal Server Error if retrieval fails
func (h *OperationHandler) History(w http.ResponseWriter, _ *http.Request) {
	operations, err := h.operationService.GetOperationHistory()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOperations.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, operations)
}

// CreateOperation handles POST requests to record a new buy or sell.
// Validates the request body before anything reaches the log.
//
// Endpoint: POST /api/operation
// Request Body: CreateOperationRequest (ticker, date, type, quantity, price, brokerage, otherFees)
// Response: 201 Created with Operation
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *OperationHandler) CreateOperation(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateOperationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateOperation(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	operation, err := h.operationService.CreateOperation(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create operation", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, operation)
}

// DeleteOperation handles DELETE requests to remove an operation.
//
// Endpoint: DELETE /api/operation/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if operation ID is invalid (validated by middleware)
// Error: 404 Not Found if operation not found
// Error: 500 Internal Server Error if deletion fails
func (h *OperationHandler) DeleteOperation(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "uuid")

	err := h.operationService.DeleteOperation(r.Context(), operationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOperationNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete operation", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
