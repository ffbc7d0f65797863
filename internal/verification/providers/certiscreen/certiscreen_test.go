package certiscreen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vouch/internal/platform/config"
	"vouch/internal/verification/providers"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := config.Certiscreen{
		APIKey:  "screen-key",
		BaseURL: server.URL,
	}
	return NewWithClient(cfg, server.Client())
}

func respondHits(hits []map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"hits": hits})
	}
}

func TestScreenAMLClean(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/screen", r.URL.Path)
		assert.Equal(t, "Bearer screen-key", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"hits": []any{}})
	})

	res := p.ScreenAML(context.Background(), providers.AMLRequest{FullName: "Ada Obi", Country: "NG"})

	require.True(t, res.Success)
	assert.Equal(t, screeningConfidence, res.Confidence)
	assert.Zero(t, res.RiskScore)
	assert.False(t, res.Sanctioned)
	assert.False(t, res.PEP)
	assert.False(t, res.AdverseMedia)
	assert.Empty(t, res.Matches)
}

func TestScreenAMLRiskScoreIsMaxMatch(t *testing.T) {
	p := newTestProvider(t, respondHits([]map[string]any{
		{"list_type": "pep", "score": 0.42, "detail": "regional councillor"},
		{"list_type": "adverse_media", "score": 0.87, "detail": "fraud coverage"},
		{"list_type": "pep", "score": 0.15, "detail": "namesake"},
	}))

	res := p.ScreenAML(context.Background(), providers.AMLRequest{FullName: "Ada Obi"})

	require.True(t, res.Success)
	assert.Equal(t, 87, res.RiskScore)
	assert.True(t, res.PEP)
	assert.True(t, res.AdverseMedia)
	assert.False(t, res.Sanctioned)
	assert.Len(t, res.Matches, 3)
	assert.Equal(t, 42, res.Matches[0].Score)
}

func TestScreenAMLSanctionsHit(t *testing.T) {
	p := newTestProvider(t, respondHits([]map[string]any{
		{"list_type": "sanctions", "score": 0.98, "detail": "OFAC SDN"},
	}))

	res := p.ScreenAML(context.Background(), providers.AMLRequest{FullName: "Bad Actor"})

	require.True(t, res.Success, "screening itself succeeded")
	assert.True(t, res.Sanctioned)
	assert.Equal(t, 98, res.RiskScore)
}

func TestScreenAMLConfidenceIndependentOfRisk(t *testing.T) {
	// A maximal-risk hit must not move the provider's own confidence.
	p := newTestProvider(t, respondHits([]map[string]any{
		{"list_type": "sanctions", "score": 1.0},
	}))

	res := p.ScreenAML(context.Background(), providers.AMLRequest{FullName: "Bad Actor"})

	require.True(t, res.Success)
	assert.Equal(t, 100, res.RiskScore)
	assert.Equal(t, screeningConfidence, res.Confidence)
}

func TestScreenAMLRequiresFullName(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	res := p.ScreenAML(context.Background(), providers.AMLRequest{Country: "NG"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "full name is required")
}

func TestScreenAMLVendorOutage(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	res := p.ScreenAML(context.Background(), providers.AMLRequest{FullName: "Ada Obi"})
	assert.False(t, res.Success)
	assert.Zero(t, res.RiskScore)
	assert.Contains(t, res.Error, "500")
}

func TestUnsupportedDomains(t *testing.T) {
	p := New(config.Providers{})

	email := p.VerifyEmail(context.Background(), "a@b.com")
	assert.False(t, email.Success)
	assert.Contains(t, email.Error, "not supported")
}
