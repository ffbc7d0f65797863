// Package smileid integrates the document/biometric vendor. It covers the
// id_document, face_match, and address domains with HMAC-signed HTTP calls.
package smileid

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"vouch/internal/platform/config"
	"vouch/internal/verification/models"
	"vouch/internal/verification/providers"
)

// Name is the registry name of the document/biometric vendor.
const Name = "smileid"

const defaultBaseURL = "https://api.smileidentity.com/v1"

// Provider is the vendor client. Unsupported covers the tax, email, phone,
// and AML domains.
type Provider struct {
	providers.Unsupported

	cfg    config.SmileID
	client providers.HTTPClient
}

// New constructs the vendor client.
func New(cfg config.Providers) *Provider {
	return &Provider{
		Unsupported: providers.NewUnsupported(Name),
		cfg:         cfg.SmileID,
		client:      providers.DefaultHTTPClient(),
	}
}

// NewWithClient injects an HTTP client; tests point it at an httptest server.
func NewWithClient(cfg config.SmileID, client providers.HTTPClient) *Provider {
	return &Provider{
		Unsupported: providers.NewUnsupported(Name),
		cfg:         cfg,
		client:      client,
	}
}

func (p *Provider) Name() string { return Name }

func (p *Provider) baseURL() string {
	if p.cfg.BaseURL != "" {
		return p.cfg.BaseURL
	}
	return defaultBaseURL
}

// signature authenticates requests: HMAC-SHA256 over timestamp+partner id,
// keyed by the API key.
func (p *Provider) signature(ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(p.cfg.APIKey))
	mac.Write([]byte(strconv.FormatInt(ts.Unix(), 10)))
	mac.Write([]byte(p.cfg.PartnerID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (p *Provider) headers() map[string]string {
	now := time.Now().UTC()
	return map[string]string{
		"X-Partner-ID": p.cfg.PartnerID,
		"X-Timestamp":  strconv.FormatInt(now.Unix(), 10),
		"X-Signature":  p.signature(now),
	}
}

type documentRequest struct {
	Country      string `json:"country"`
	IDNumber     string `json:"id_number,omitempty"`
	DocumentType string `json:"document_type,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	DateOfBirth  string `json:"date_of_birth,omitempty"`
	Image        string `json:"image"`
}

type documentResponse struct {
	Verified   bool   `json:"verified"`
	Confidence int    `json:"confidence"`
	Message    string `json:"message"`
	Extracted  struct {
		FullName       string `json:"full_name"`
		DateOfBirth    string `json:"date_of_birth"`
		IDNumber       string `json:"id_number"`
		DocumentType   string `json:"document_type"`
		IssuingCountry string `json:"issuing_country"`
	} `json:"extracted"`
}

// VerifyIDDocument submits the document image for OCR and authenticity
// checks and maps the extracted fields.
func (p *Provider) VerifyIDDocument(ctx context.Context, req providers.IDDocumentRequest) models.IDDocumentResult {
	if len(req.DocumentImage) == 0 {
		return models.IDDocumentResult{
			Outcome: models.FailedOutcome(Name, "document image is required"),
		}
	}

	payload := documentRequest{
		Country:      req.Country,
		IDNumber:     req.IDNumber,
		DocumentType: req.DocumentType,
		FullName:     req.FullName,
		DateOfBirth:  req.DateOfBirth,
		Image:        base64.StdEncoding.EncodeToString(req.DocumentImage),
	}

	var resp documentResponse
	err := providers.CallJSON(ctx, p.client, Name, "POST", p.baseURL()+"/id_verification", p.headers(), payload, &resp)
	if err != nil {
		return models.IDDocumentResult{Outcome: models.FailedOutcome(Name, err.Error())}
	}
	if !resp.Verified {
		reason := resp.Message
		if reason == "" {
			reason = "vendor could not verify document"
		}
		return models.IDDocumentResult{Outcome: models.FailedOutcome(Name, reason)}
	}

	return models.IDDocumentResult{
		Outcome: models.Outcome{
			Success:    true,
			Confidence: clamp(resp.Confidence),
			Provider:   Name,
			VerifiedAt: time.Now().UTC(),
		},
		FullName:       resp.Extracted.FullName,
		DateOfBirth:    resp.Extracted.DateOfBirth,
		IDNumber:       resp.Extracted.IDNumber,
		DocumentType:   resp.Extracted.DocumentType,
		IssuingCountry: resp.Extracted.IssuingCountry,
	}
}

type faceMatchRequest struct {
	Country       string `json:"country"`
	IDNumber      string `json:"id_number,omitempty"`
	DocumentImage string `json:"document_image"`
	Selfie        string `json:"selfie"`
}

type faceMatchResponse struct {
	Match      bool   `json:"match"`
	MatchScore int    `json:"match_score"`
	Confidence int    `json:"confidence"`
	Message    string `json:"message"`
}

// VerifyFaceMatch compares the selfie to the document portrait.
func (p *Provider) VerifyFaceMatch(ctx context.Context, req providers.FaceMatchRequest) models.FaceMatchResult {
	if len(req.Selfie) == 0 || len(req.DocumentImage) == 0 {
		return models.FaceMatchResult{
			Outcome: models.FailedOutcome(Name, "selfie and document image are required"),
		}
	}

	payload := faceMatchRequest{
		Country:       req.Country,
		IDNumber:      req.IDNumber,
		DocumentImage: base64.StdEncoding.EncodeToString(req.DocumentImage),
		Selfie:        base64.StdEncoding.EncodeToString(req.Selfie),
	}

	var resp faceMatchResponse
	err := providers.CallJSON(ctx, p.client, Name, "POST", p.baseURL()+"/face_match", p.headers(), payload, &resp)
	if err != nil {
		return models.FaceMatchResult{Outcome: models.FailedOutcome(Name, err.Error())}
	}
	if !resp.Match {
		reason := resp.Message
		if reason == "" {
			reason = fmt.Sprintf("selfie does not match document (score %d)", resp.MatchScore)
		}
		return models.FaceMatchResult{
			Outcome:    models.FailedOutcome(Name, reason),
			MatchScore: resp.MatchScore,
		}
	}

	return models.FaceMatchResult{
		Outcome: models.Outcome{
			Success:    true,
			Confidence: clamp(resp.Confidence),
			Provider:   Name,
			VerifiedAt: time.Now().UTC(),
		},
		MatchScore: resp.MatchScore,
	}
}

type addressRequest struct {
	Country  string `json:"country"`
	Address  string `json:"address"`
	Document string `json:"document,omitempty"`
}

type addressResponse struct {
	Verified   bool   `json:"verified"`
	Confidence int    `json:"confidence"`
	Normalized string `json:"normalized_address"`
	Message    string `json:"message"`
}

// VerifyAddress checks the claimed residential address against the uploaded
// proof document.
func (p *Provider) VerifyAddress(ctx context.Context, req providers.AddressRequest) models.AddressResult {
	if req.Address == "" {
		return models.AddressResult{
			Outcome: models.FailedOutcome(Name, "residential address is required"),
		}
	}

	payload := addressRequest{
		Country: req.Country,
		Address: req.Address,
	}
	if len(req.ProofDocument) > 0 {
		payload.Document = base64.StdEncoding.EncodeToString(req.ProofDocument)
	}

	var resp addressResponse
	err := providers.CallJSON(ctx, p.client, Name, "POST", p.baseURL()+"/address_verification", p.headers(), payload, &resp)
	if err != nil {
		return models.AddressResult{Outcome: models.FailedOutcome(Name, err.Error())}
	}
	if !resp.Verified {
		reason := resp.Message
		if reason == "" {
			reason = "vendor could not verify address"
		}
		return models.AddressResult{Outcome: models.FailedOutcome(Name, reason)}
	}

	return models.AddressResult{
		Outcome: models.Outcome{
			Success:    true,
			Confidence: clamp(resp.Confidence),
			Provider:   Name,
			VerifiedAt: time.Now().UTC(),
		},
		NormalizedAddress: resp.Normalized,
	}
}

func clamp(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
