// Package httptransport is the thin HTTP layer. It delegates to the
// verification service without embedding business logic; document collection
// and record persistence stay with the embedding service.
package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vouch/internal/attestation"
	"vouch/internal/verification"
	"vouch/internal/verification/models"
)

// Service is the verification operation the transport exposes.
type Service interface {
	Process(ctx context.Context, req verification.Request) (*models.Record, error)
}

// Handler wires verification endpoints to the orchestrator.
type Handler struct {
	service  Service
	attestor *attestation.Issuer
	logger   *slog.Logger
}

// New constructs the handler. The attestor may be nil; approved records then
// ship without an attestation token.
func New(service Service, attestor *attestation.Issuer, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		attestor: attestor,
		logger:   logger,
	}
}

// NewRouter mounts all endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/verifications", h.HandleProcess)
	r.Get("/healthz", h.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

type processRequest struct {
	UserID       string          `json:"user_id"`
	SubmissionID string          `json:"submission_id"`
	Tier         int             `json:"tier"`
	Country      string          `json:"country"`
	Evidence     models.Evidence `json:"evidence"`
}

type processResponse struct {
	Record      *models.Record `json:"record"`
	Attestation string         `json:"attestation,omitempty"`
}

// HandleProcess handles POST /verifications.
func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	record, err := h.service.Process(ctx, verification.Request{
		UserID:       req.UserID,
		SubmissionID: req.SubmissionID,
		Tier:         models.Tier(req.Tier),
		Country:      req.Country,
		Evidence:     req.Evidence,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		h.logger.ErrorContext(ctx, "verification failed",
			"user_id", req.UserID,
			"submission_id", req.SubmissionID,
			"error", err,
		)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := processResponse{Record: record}
	if h.attestor != nil && record.Status == models.StatusApproved {
		token, err := h.attestor.Issue(record)
		if err != nil {
			h.logger.ErrorContext(ctx, "attestation issuance failed",
				"submission_id", req.SubmissionID,
				"error", err,
			)
		} else {
			resp.Attestation = token
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleHealth handles GET /healthz.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
