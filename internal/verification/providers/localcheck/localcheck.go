// Package localcheck is the built-in low-cost provider. It validates email
// addresses and phone numbers with purely local rules and never calls a
// network vendor.
package localcheck

import (
	"context"
	"regexp"
	"strings"
	"time"

	"vouch/internal/verification/models"
	"vouch/internal/verification/providers"
	"vouch/pkg/phone"
)

// Name is the registry name of the built-in provider.
const Name = "localcheck"

const (
	confidenceValid      = 90
	confidenceDisposable = 50
	confidencePhone      = 85
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// disposableDomains flags throwaway email hosts. Matches get lower
// confidence instead of failing outright.
var disposableDomains = map[string]bool{
	"tempmail.com":      true,
	"temp-mail.org":     true,
	"mailinator.com":    true,
	"guerrillamail.com": true,
	"10minutemail.com":  true,
	"throwawaymail.com": true,
	"yopmail.com":       true,
	"sharklasers.com":   true,
	"getnada.com":       true,
	"trashmail.com":     true,
	"maildrop.cc":       true,
	"fakeinbox.com":     true,
	"dispostable.com":   true,
	"mintemail.com":     true,
	"spamgourmet.com":   true,
	"mytemp.email":      true,
	"burnermail.io":     true,
	"emailondeck.com":   true,
	"tempinbox.com":     true,
	"mohmal.com":        true,
}

// Provider implements the email and phone domains locally.
type Provider struct {
	providers.Unsupported
}

// New constructs the built-in checker.
func New() *Provider {
	return &Provider{Unsupported: providers.NewUnsupported(Name)}
}

func (p *Provider) Name() string { return Name }

// VerifyEmail validates format, flags disposable domains with reduced
// confidence, and otherwise reports high confidence.
func (p *Provider) VerifyEmail(_ context.Context, email string) models.EmailResult {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(normalized) {
		return models.EmailResult{
			Outcome: models.FailedOutcome(Name, "email address has invalid format"),
		}
	}

	domain := normalized[strings.LastIndexByte(normalized, '@')+1:]
	result := models.EmailResult{
		Outcome: models.Outcome{
			Success:    true,
			Confidence: confidenceValid,
			Provider:   Name,
			VerifiedAt: time.Now().UTC(),
		},
		Normalized: normalized,
	}
	if disposableDomains[domain] {
		result.Confidence = confidenceDisposable
		result.Disposable = true
	}
	return result
}

// VerifyPhone checks the per-country digit and prefix pattern. Numbers
// failing the pattern are rejected with confidence 0.
func (p *Provider) VerifyPhone(_ context.Context, rawPhone, country string) models.PhoneResult {
	if !phone.Valid(rawPhone, country) {
		return models.PhoneResult{
			Outcome: models.FailedOutcome(Name, "phone number does not match country pattern"),
		}
	}

	return models.PhoneResult{
		Outcome: models.Outcome{
			Success:    true,
			Confidence: confidencePhone,
			Provider:   Name,
			VerifiedAt: time.Now().UTC(),
		},
		E164:        "+" + phone.Normalize(rawPhone),
		CountryCode: phone.CallingCode(country),
	}
}
