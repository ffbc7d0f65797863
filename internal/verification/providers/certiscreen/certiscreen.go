// Package certiscreen integrates the watchlist screening vendor covering
// sanctions, politically-exposed-person, and adverse-media lists.
package certiscreen

import (
	"context"
	"time"

	"vouch/internal/platform/config"
	"vouch/internal/verification/models"
	"vouch/internal/verification/providers"
)

// Name is the registry name of the screening vendor.
const Name = "certiscreen"

const defaultBaseURL = "https://api.certiscreen.io/v2"

// Confidence the provider reports when screening completed. This is the
// provider's certainty that the screening ran, independent of the risk score
// derived from the matches.
const screeningConfidence = 95

// Match types as the vendor reports them.
const (
	matchSanctions    = "sanctions"
	matchPEP          = "pep"
	matchAdverseMedia = "adverse_media"
)

// Provider is the vendor client. Unsupported covers every non-AML domain.
type Provider struct {
	providers.Unsupported

	cfg    config.Certiscreen
	client providers.HTTPClient
}

// New constructs the vendor client.
func New(cfg config.Providers) *Provider {
	return &Provider{
		Unsupported: providers.NewUnsupported(Name),
		cfg:         cfg.Certiscreen,
		client:      providers.DefaultHTTPClient(),
	}
}

// NewWithClient injects an HTTP client; tests point it at an httptest server.
func NewWithClient(cfg config.Certiscreen, client providers.HTTPClient) *Provider {
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

type screenRequest struct {
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Country     string `json:"country,omitempty"`
}

type screenResponse struct {
	Hits []struct {
		ListType string  `json:"list_type"`
		Score    float64 `json:"score"` // 0.0-1.0 match strength
		Detail   string  `json:"detail"`
	} `json:"hits"`
}

// ScreenAML screens the subject against all watchlists. RiskScore is the
// maximum match score scaled to 0-100; Confidence stays the provider's own
// certainty and is never derived from the risk score.
func (p *Provider) ScreenAML(ctx context.Context, req providers.AMLRequest) models.AMLScreeningResult {
	if req.FullName == "" {
		return models.AMLScreeningResult{
			Outcome: models.FailedOutcome(Name, "full name is required for screening"),
		}
	}

	payload := screenRequest{
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
		Country:     req.Country,
	}
	headers := map[string]string{"Authorization": "Bearer " + p.cfg.APIKey}

	var resp screenResponse
	err := providers.CallJSON(ctx, p.client, Name, "POST", p.baseURL()+"/screen", headers, payload, &resp)
	if err != nil {
		return models.AMLScreeningResult{Outcome: models.FailedOutcome(Name, err.Error())}
	}

	result := models.AMLScreeningResult{
		Outcome: models.Outcome{
			Success:    true,
			Confidence: screeningConfidence,
			Provider:   Name,
			VerifiedAt: time.Now().UTC(),
		},
	}

	maxScore := 0
	for _, hit := range resp.Hits {
		score := int(hit.Score*100 + 0.5)
		if score > 100 {
			score = 100
		}
		if score > maxScore {
			maxScore = score
		}

		result.Matches = append(result.Matches, models.AMLMatch{
			Type:   hit.ListType,
			Score:  score,
			Detail: hit.Detail,
		})

		switch hit.ListType {
		case matchSanctions:
			result.Sanctioned = true
		case matchPEP:
			result.PEP = true
		case matchAdverseMedia:
			result.AdverseMedia = true
		}
	}
	result.RiskScore = maxScore

	return result
}
