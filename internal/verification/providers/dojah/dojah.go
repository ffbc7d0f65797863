// Package dojah integrates the national-identifier vendor, strongest in
// Nigeria and Ghana. It covers id_document (BVN/NIN registry lookup),
// face_match (selfie against the registry photo), and tax_id (TIN lookup).
package dojah

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"

	"vouch/internal/platform/config"
	"vouch/internal/verification/models"
	"vouch/internal/verification/providers"
)

// Name is the registry name of the national-identifier vendor.
const Name = "dojah"

const defaultBaseURL = "https://api.dojah.io/api/v1"

// statusSuccess is the vendor's exact success sentinel. Anything else is a
// full failure with confidence 0; there is no partial credit on registry
// lookups.
const statusSuccess = "00"

// Provider is the vendor client. Unsupported covers the address, email,
// phone, and AML domains.
type Provider struct {
	providers.Unsupported

	cfg    config.Dojah
	client providers.HTTPClient
}

// New constructs the vendor client.
func New(cfg config.Providers) *Provider {
	return &Provider{
		Unsupported: providers.NewUnsupported(Name),
		cfg:         cfg.Dojah,
		client:      providers.DefaultHTTPClient(),
	}
}

// NewWithClient injects an HTTP client; tests point it at an httptest server.
func NewWithClient(cfg config.Dojah, client providers.HTTPClient) *Provider {
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

func (p *Provider) headers() map[string]string {
	return map[string]string{
		"AppId":         p.cfg.AppID,
		"Authorization": p.cfg.SecretKey,
	}
}

type lookupResponse struct {
	Status string `json:"status"`
	Entity struct {
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		DateOfBirth string `json:"date_of_birth"`
		IDNumber    string `json:"id_number"`
		Confidence  int    `json:"confidence_value"`
	} `json:"entity"`
	Message string `json:"message"`
}

// VerifyIDDocument looks the national identifier up in the registry. The
// lookup succeeds only when the vendor status equals the success sentinel.
func (p *Provider) VerifyIDDocument(ctx context.Context, req providers.IDDocumentRequest) models.IDDocumentResult {
	if req.IDNumber == "" {
		return models.IDDocumentResult{
			Outcome: models.FailedOutcome(Name, "national identifier number is required"),
		}
	}

	endpoint := fmt.Sprintf("%s/kyc/lookup?id_number=%s&country=%s",
		p.baseURL(), url.QueryEscape(req.IDNumber), url.QueryEscape(req.Country))

	var resp lookupResponse
	err := providers.CallJSON(ctx, p.client, Name, "GET", endpoint, p.headers(), nil, &resp)
	if err != nil {
		return models.IDDocumentResult{Outcome: models.FailedOutcome(Name, err.Error())}
	}
	if resp.Status != statusSuccess {
		reason := resp.Message
		if reason == "" {
			reason = fmt.Sprintf("registry lookup returned status %q", resp.Status)
		}
		return models.IDDocumentResult{Outcome: models.FailedOutcome(Name, reason)}
	}

	fullName := strings.TrimSpace(resp.Entity.FirstName + " " + resp.Entity.LastName)
	return models.IDDocumentResult{
		Outcome: models.Outcome{
			Success:    true,
			Confidence: clamp(resp.Entity.Confidence),
			Provider:   Name,
			VerifiedAt: time.Now().UTC(),
		},
		FullName:       fullName,
		DateOfBirth:    resp.Entity.DateOfBirth,
		IDNumber:       resp.Entity.IDNumber,
		DocumentType:   "national_id",
		IssuingCountry: req.Country,
	}
}

type selfieRequest struct {
	IDNumber string `json:"id_number"`
	Country  string `json:"country"`
	Selfie   string `json:"selfie_image"`
}

type selfieResponse struct {
	Status string `json:"status"`
	Entity struct {
		Match           bool `json:"match"`
		ConfidenceValue int  `json:"confidence_value"`
	} `json:"entity"`
	Message string `json:"message"`
}

// VerifyFaceMatch compares the selfie against the registry photo on file for
// the national identifier.
func (p *Provider) VerifyFaceMatch(ctx context.Context, req providers.FaceMatchRequest) models.FaceMatchResult {
	if len(req.Selfie) == 0 || req.IDNumber == "" {
		return models.FaceMatchResult{
			Outcome: models.FailedOutcome(Name, "selfie and national identifier are required"),
		}
	}

	payload := selfieRequest{
		IDNumber: req.IDNumber,
		Country:  req.Country,
		Selfie:   base64.StdEncoding.EncodeToString(req.Selfie),
	}

	var resp selfieResponse
	err := providers.CallJSON(ctx, p.client, Name, "POST", p.baseURL()+"/kyc/selfie_verification", p.headers(), payload, &resp)
	if err != nil {
		return models.FaceMatchResult{Outcome: models.FailedOutcome(Name, err.Error())}
	}
	if resp.Status != statusSuccess || !resp.Entity.Match {
		reason := resp.Message
		if reason == "" {
			reason = "selfie does not match registry photo"
		}
		return models.FaceMatchResult{
			Outcome:    models.FailedOutcome(Name, reason),
			MatchScore: clamp(resp.Entity.ConfidenceValue),
		}
	}

	return models.FaceMatchResult{
		Outcome: models.Outcome{
			Success:    true,
			Confidence: clamp(resp.Entity.ConfidenceValue),
			Provider:   Name,
			VerifiedAt: time.Now().UTC(),
		},
		MatchScore: clamp(resp.Entity.ConfidenceValue),
	}
}

type tinResponse struct {
	Status string `json:"status"`
	Entity struct {
		Name       string `json:"name"`
		TaxIDType  string `json:"tax_id_type"`
		Confidence int    `json:"confidence_value"`
	} `json:"entity"`
	Message string `json:"message"`
}

// VerifyTaxID looks the tax identifier up in the revenue registry. Same
// exact-sentinel rule as the identifier lookup.
func (p *Provider) VerifyTaxID(ctx context.Context, req providers.TaxIDRequest) models.TaxIDResult {
	if req.TaxID == "" {
		return models.TaxIDResult{
			Outcome: models.FailedOutcome(Name, "tax identifier is required"),
		}
	}

	endpoint := fmt.Sprintf("%s/kyc/tin?tin=%s&country=%s",
		p.baseURL(), url.QueryEscape(req.TaxID), url.QueryEscape(req.Country))

	var resp tinResponse
	err := providers.CallJSON(ctx, p.client, Name, "GET", endpoint, p.headers(), nil, &resp)
	if err != nil {
		return models.TaxIDResult{Outcome: models.FailedOutcome(Name, err.Error())}
	}
	if resp.Status != statusSuccess {
		reason := resp.Message
		if reason == "" {
			reason = fmt.Sprintf("tax registry returned status %q", resp.Status)
		}
		return models.TaxIDResult{Outcome: models.FailedOutcome(Name, reason)}
	}

	taxIDType := resp.Entity.TaxIDType
	if taxIDType == "" {
		taxIDType = "tin"
	}
	return models.TaxIDResult{
		Outcome: models.Outcome{
			Success:    true,
			Confidence: clamp(resp.Entity.Confidence),
			Provider:   Name,
			VerifiedAt: time.Now().UTC(),
		},
		TaxIDType: taxIDType,
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
