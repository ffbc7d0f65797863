// Package termii integrates the SMS/OTP vendor for phone verification.
// Candidate numbers are validated against the per-country pattern table
// before any network call; failing numbers never reach the vendor.
package termii

import (
	"context"
	"time"

	"vouch/internal/platform/config"
	"vouch/internal/verification/models"
	"vouch/internal/verification/providers"
	"vouch/pkg/phone"
)

// Name is the registry name of the SMS vendor.
const Name = "termii"

const defaultBaseURL = "https://api.ng.termii.com/api"

// Provider is the vendor client. Unsupported covers every non-phone domain.
type Provider struct {
	providers.Unsupported

	cfg    config.Termii
	client providers.HTTPClient
}

// New constructs the vendor client.
func New(cfg config.Providers) *Provider {
	return &Provider{
		Unsupported: providers.NewUnsupported(Name),
		cfg:         cfg.Termii,
		client:      providers.DefaultHTTPClient(),
	}
}

// NewWithClient injects an HTTP client; tests point it at an httptest server.
func NewWithClient(cfg config.Termii, client providers.HTTPClient) *Provider {
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

type lookupRequest struct {
	APIKey   string `json:"api_key"`
	Phone    string `json:"phone_number"`
	SenderID string `json:"sender_id,omitempty"`
}

type lookupResponse struct {
	Valid        bool   `json:"valid"`
	Confidence   int    `json:"confidence"`
	OTPDelivered bool   `json:"otp_delivered"`
	Message      string `json:"message"`
}

// VerifyPhone validates the number pattern locally, then asks the vendor to
// confirm the line and dispatch an OTP.
func (p *Provider) VerifyPhone(ctx context.Context, rawPhone, country string) models.PhoneResult {
	if !phone.Valid(rawPhone, country) {
		return models.PhoneResult{
			Outcome: models.FailedOutcome(Name, "phone number does not match country pattern"),
		}
	}

	normalized := phone.Normalize(rawPhone)
	payload := lookupRequest{
		APIKey:   p.cfg.APIKey,
		Phone:    normalized,
		SenderID: p.cfg.SenderID,
	}

	var resp lookupResponse
	err := providers.CallJSON(ctx, p.client, Name, "POST", p.baseURL()+"/check/dnd", nil, payload, &resp)
	if err != nil {
		return models.PhoneResult{Outcome: models.FailedOutcome(Name, err.Error())}
	}
	if !resp.Valid {
		reason := resp.Message
		if reason == "" {
			reason = "vendor reports number is not reachable"
		}
		return models.PhoneResult{Outcome: models.FailedOutcome(Name, reason)}
	}

	confidence := resp.Confidence
	if confidence <= 0 {
		confidence = 88
	} else if confidence > 100 {
		confidence = 100
	}

	return models.PhoneResult{
		Outcome: models.Outcome{
			Success:    true,
			Confidence: confidence,
			Provider:   Name,
			VerifiedAt: time.Now().UTC(),
		},
		E164:         "+" + normalized,
		CountryCode:  phone.CallingCode(country),
		OTPDelivered: resp.OTPDelivered,
	}
}
