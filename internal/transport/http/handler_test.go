package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vouch/internal/attestation"
	"vouch/internal/verification"
	"vouch/internal/verification/models"
)

type stubService struct {
	record  *models.Record
	err     error
	lastReq verification.Request
}

func (s *stubService) Process(_ context.Context, req verification.Request) (*models.Record, error) {
	s.lastReq = req
	return s.record, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postVerification(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/verifications", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleProcess(t *testing.T) {
	svc := &stubService{record: &models.Record{
		ID:              uuid.New(),
		UserID:          "user-1",
		SubmissionID:    "sub-1",
		Tier:            models.Tier1,
		Country:         "NG",
		Status:          models.StatusApproved,
		AutoApproved:    true,
		ConfidenceScore: 87.5,
	}}
	router := NewRouter(New(svc, nil, discardLogger()))

	rec := postVerification(t, router, `{
		"user_id": "user-1",
		"submission_id": "sub-1",
		"tier": 1,
		"country": "NG",
		"evidence": {"email": "ada@example.com", "phone": "2341234567890"}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Record      models.Record `json:"record"`
		Attestation string        `json:"attestation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusApproved, resp.Record.Status)
	assert.Empty(t, resp.Attestation, "no attestor configured")

	assert.Equal(t, models.Tier1, svc.lastReq.Tier)
	assert.Equal(t, "ada@example.com", svc.lastReq.Evidence.Email)
}

func TestHandleProcessIssuesAttestation(t *testing.T) {
	issuer := attestation.NewIssuer("test-key", "vouch", time.Hour)
	svc := &stubService{record: &models.Record{
		UserID:       "user-1",
		SubmissionID: "sub-1",
		Tier:         models.Tier2,
		Country:      "NG",
		Status:       models.StatusApproved,
	}}
	router := NewRouter(New(svc, issuer, discardLogger()))

	rec := postVerification(t, router, `{"user_id":"user-1","submission_id":"sub-1","tier":2,"country":"NG"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Attestation string `json:"attestation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Attestation)

	claims, err := issuer.Validate(resp.Attestation)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestHandleProcessNoAttestationForPendingReview(t *testing.T) {
	issuer := attestation.NewIssuer("test-key", "vouch", time.Hour)
	svc := &stubService{record: &models.Record{
		UserID: "user-1",
		Status: models.StatusPendingReview,
	}}
	router := NewRouter(New(svc, issuer, discardLogger()))

	rec := postVerification(t, router, `{"user_id":"user-1","submission_id":"s","tier":3,"country":"NG"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "attestation")
}

func TestHandleProcessBadJSON(t *testing.T) {
	router := NewRouter(New(&stubService{}, nil, discardLogger()))

	rec := postVerification(t, router, `{"user_id": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}

func TestHandleProcessServiceError(t *testing.T) {
	svc := &stubService{err: errors.New("country is required")}
	router := NewRouter(New(svc, nil, discardLogger()))

	rec := postVerification(t, router, `{"user_id":"u","submission_id":"s","tier":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "country is required")
}

func TestHandleHealth(t *testing.T) {
	router := NewRouter(New(&stubService{}, nil, discardLogger()))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
