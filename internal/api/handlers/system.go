package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api/response"
	"github.com/MilenaFRocha/Controle-Acoes/internal/database"
	"github.com/MilenaFRocha/Controle-Acoes/internal/repository"
	"github.com/MilenaFRocha/Controle-Acoes/internal/secret"
)

// SystemHandler handles health checks and runtime configuration endpoints.
type SystemHandler struct {
	db          *sql.DB
	settingRepo *repository.SettingRepository
	codec       *secret.Codec
}

// NewSystemHandler creates a new SystemHandler. codec may be nil when no
// fernet key is configured; the quote-token endpoints then respond 503.
func NewSystemHandler(db *sql.DB, settingRepo *repository.SettingRepository, codec *secret.Codec) *SystemHandler {
	return &SystemHandler{
		db:          db,
		settingRepo: settingRepo,
		codec:       codec,
	}
}

// Health handles GET requests for the service health check.
//
// Endpoint: GET /api/system/health
// Response: 200 OK with {"status": "ok"}
// Error: 503 Service Unavailable if the database is unreachable
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := database.HealthCheck(h.db); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "database unreachable", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type quoteTokenRequest struct {
	Token string `json:"token"`
}

// SetQuoteToken handles PUT requests to store the external quote provider's
// API token. The token is fernet-encrypted before it touches the database.
//
// Endpoint: PUT /api/system/quote-token
// Request Body: {"token": "..."}
// Response: 204 No Content
// Error: 400 Bad Request if the body is invalid or the token empty
// Error: 503 Service Unavailable if no fernet key is configured
// Error: 500 Internal Server Error if encryption or storage fails
func (h *SystemHandler) SetQuoteToken(w http.ResponseWriter, r *http.Request) {
	if h.codec == nil {
		response.RespondError(w, http.StatusServiceUnavailable, "no encryption key configured", "set FERNET_KEY to store the quote API token")
		return
	}

	req, err := parseJSON[quoteTokenRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "token is required")
		return
	}

	encrypted, err := h.codec.Encrypt(req.Token)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to encrypt token", err.Error())
		return
	}

	if err := h.settingRepo.Set(r.Context(), repository.SettingQuoteAPIToken, encrypted); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to store token", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
