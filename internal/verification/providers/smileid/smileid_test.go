package smileid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vouch/internal/platform/config"
	"vouch/internal/verification/models"
	"vouch/internal/verification/providers"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := config.SmileID{
		PartnerID: "partner-1",
		APIKey:    "test-key",
		BaseURL:   server.URL,
	}
	return NewWithClient(cfg, server.Client())
}

func TestVerifyIDDocument(t *testing.T) {
	var gotPartner, gotSignature string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/id_verification", r.URL.Path)
		gotPartner = r.Header.Get("X-Partner-ID")
		gotSignature = r.Header.Get("X-Signature")

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "NG", body["country"])
		assert.NotEmpty(t, body["image"], "document image must be sent base64 encoded")

		json.NewEncoder(w).Encode(map[string]any{
			"verified":   true,
			"confidence": 92,
			"extracted": map[string]string{
				"full_name":       "Ada Obi",
				"date_of_birth":   "1990-04-02",
				"id_number":       "22334455667",
				"document_type":   "bvn",
				"issuing_country": "NG",
			},
		})
	})

	res := p.VerifyIDDocument(context.Background(), providers.IDDocumentRequest{
		Country:       "NG",
		IDNumber:      "22334455667",
		DocumentImage: []byte("jpeg-bytes"),
	})

	require.True(t, res.Success)
	assert.Equal(t, 92, res.Confidence)
	assert.Equal(t, Name, res.Provider)
	assert.Equal(t, "Ada Obi", res.FullName)
	assert.Equal(t, "bvn", res.DocumentType)
	assert.Equal(t, "NG", res.IssuingCountry)
	assert.True(t, res.Outcome.Passed())

	assert.Equal(t, "partner-1", gotPartner)
	assert.Len(t, gotSignature, 64, "signature is hex encoded HMAC-SHA256")
}

func TestVerifyIDDocumentRequiresImage(t *testing.T) {
	called := false
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	res := p.VerifyIDDocument(context.Background(), providers.IDDocumentRequest{Country: "NG", IDNumber: "1"})

	assert.False(t, res.Success)
	assert.Zero(t, res.Confidence)
	assert.Contains(t, res.Error, "document image")
	assert.False(t, called, "missing evidence must not reach the vendor")
}

func TestVerifyIDDocumentVendorRejection(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"verified": false,
			"message":  "document appears tampered",
		})
	})

	res := p.VerifyIDDocument(context.Background(), providers.IDDocumentRequest{
		Country:       "NG",
		DocumentImage: []byte("jpeg-bytes"),
	})

	assert.False(t, res.Success)
	assert.Zero(t, res.Confidence)
	assert.Equal(t, "document appears tampered", res.Error)
}

func TestVerifyIDDocumentVendorOutage(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	res := p.VerifyIDDocument(context.Background(), providers.IDDocumentRequest{
		Country:       "NG",
		DocumentImage: []byte("jpeg-bytes"),
	})

	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "502")
}

func TestVerifyFaceMatch(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/face_match", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"match":       true,
			"match_score": 97,
			"confidence":  95,
		})
	})

	res := p.VerifyFaceMatch(context.Background(), providers.FaceMatchRequest{
		Country:       "NG",
		DocumentImage: []byte("doc"),
		Selfie:        []byte("selfie"),
	})

	require.True(t, res.Success)
	assert.Equal(t, 95, res.Confidence)
	assert.Equal(t, 97, res.MatchScore)
}

func TestVerifyFaceMatchMismatch(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"match":       false,
			"match_score": 31,
		})
	})

	res := p.VerifyFaceMatch(context.Background(), providers.FaceMatchRequest{
		Country:       "NG",
		DocumentImage: []byte("doc"),
		Selfie:        []byte("selfie"),
	})

	assert.False(t, res.Success)
	assert.Equal(t, 31, res.MatchScore)
	assert.Contains(t, res.Error, "does not match")
}

func TestVerifyFaceMatchRequiresBothImages(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	res := p.VerifyFaceMatch(context.Background(), providers.FaceMatchRequest{Selfie: []byte("selfie")})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "required")
}

func TestVerifyAddress(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/address_verification", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"verified":           true,
			"confidence":         81,
			"normalized_address": "12 Marina Rd, Lagos",
		})
	})

	res := p.VerifyAddress(context.Background(), providers.AddressRequest{
		Country: "NG",
		Address: "12 marina road lagos",
	})

	require.True(t, res.Success)
	assert.Equal(t, 81, res.Confidence)
	assert.Equal(t, "12 Marina Rd, Lagos", res.NormalizedAddress)
}

func TestConfidenceClamped(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"verified":   true,
			"confidence": 140,
		})
	})

	res := p.VerifyIDDocument(context.Background(), providers.IDDocumentRequest{
		Country:       "NG",
		DocumentImage: []byte("jpeg-bytes"),
	})

	require.True(t, res.Success)
	assert.Equal(t, 100, res.Confidence)
}

func TestUnsupportedDomains(t *testing.T) {
	p := New(config.Providers{})

	email := p.VerifyEmail(context.Background(), "a@b.com")
	assert.False(t, email.Success)
	assert.Contains(t, email.Error, "not supported")

	aml := p.ScreenAML(context.Background(), providers.AMLRequest{FullName: "Ada Obi"})
	assert.False(t, aml.Success)
	assert.Equal(t, models.FailedOutcome(Name, aml.Error), aml.Outcome)
}
