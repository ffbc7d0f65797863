// Package providers defines the capability contract every verification
// vendor integration implements, plus the registry that resolves provider
// names to construct-once instances.
package providers

//go:generate mockgen -destination=../mocks/mocks.go -package=mocks vouch/internal/verification/providers Provider

import (
	"context"
	"fmt"

	"vouch/internal/verification/models"
)

// IDDocumentRequest carries evidence for a government-ID or national
// identifier check.
type IDDocumentRequest struct {
	Country       string
	IDNumber      string
	DocumentType  string
	FullName      string
	DateOfBirth   string
	DocumentImage []byte
}

// FaceMatchRequest carries evidence for a selfie-to-document comparison.
type FaceMatchRequest struct {
	Country       string
	IDNumber      string
	DocumentImage []byte
	Selfie        []byte
}

// AddressRequest carries evidence for proof-of-address verification.
type AddressRequest struct {
	Country       string
	Address       string
	ProofDocument []byte
}

// TaxIDRequest carries evidence for a tax-identifier check.
type TaxIDRequest struct {
	Country  string
	TaxID    string
	FullName string
}

// AMLRequest carries the identity to screen against watchlists.
type AMLRequest struct {
	FullName    string
	DateOfBirth string
	Country     string
}

// Provider is the capability contract. A provider implements zero or more of
// the seven check domains; unimplemented domains return a deterministic
// unsupported failure. Methods never return errors: network and vendor
// failures are absorbed into the result's Error field so callers branch only
// on results, never on provider identity.
type Provider interface {
	Name() string

	VerifyIDDocument(ctx context.Context, req IDDocumentRequest) models.IDDocumentResult
	VerifyFaceMatch(ctx context.Context, req FaceMatchRequest) models.FaceMatchResult
	VerifyAddress(ctx context.Context, req AddressRequest) models.AddressResult
	VerifyTaxID(ctx context.Context, req TaxIDRequest) models.TaxIDResult
	VerifyEmail(ctx context.Context, email string) models.EmailResult
	VerifyPhone(ctx context.Context, phone, country string) models.PhoneResult
	ScreenAML(ctx context.Context, req AMLRequest) models.AMLScreeningResult
}

// UnsupportedOutcome is the fixed failure shape for a domain a provider does
// not implement.
func UnsupportedOutcome(provider string, t models.CheckType) models.Outcome {
	return models.FailedOutcome(provider, fmt.Sprintf("check %s not supported by provider %s", t, provider))
}

// Unsupported supplies unsupported-failure implementations for every domain.
// Concrete providers embed it and override the checks they actually perform.
type Unsupported struct {
	name string
}

// NewUnsupported builds the embeddable base for the named provider.
func NewUnsupported(name string) Unsupported {
	return Unsupported{name: name}
}

func (u Unsupported) VerifyIDDocument(_ context.Context, _ IDDocumentRequest) models.IDDocumentResult {
	return models.IDDocumentResult{Outcome: UnsupportedOutcome(u.name, models.CheckIDDocument)}
}

func (u Unsupported) VerifyFaceMatch(_ context.Context, _ FaceMatchRequest) models.FaceMatchResult {
	return models.FaceMatchResult{Outcome: UnsupportedOutcome(u.name, models.CheckFaceMatch)}
}

func (u Unsupported) VerifyAddress(_ context.Context, _ AddressRequest) models.AddressResult {
	return models.AddressResult{Outcome: UnsupportedOutcome(u.name, models.CheckAddress)}
}

func (u Unsupported) VerifyTaxID(_ context.Context, _ TaxIDRequest) models.TaxIDResult {
	return models.TaxIDResult{Outcome: UnsupportedOutcome(u.name, models.CheckTaxID)}
}

func (u Unsupported) VerifyEmail(_ context.Context, _ string) models.EmailResult {
	return models.EmailResult{Outcome: UnsupportedOutcome(u.name, models.CheckEmail)}
}

func (u Unsupported) VerifyPhone(_ context.Context, _, _ string) models.PhoneResult {
	return models.PhoneResult{Outcome: UnsupportedOutcome(u.name, models.CheckPhone)}
}

func (u Unsupported) ScreenAML(_ context.Context, _ AMLRequest) models.AMLScreeningResult {
	return models.AMLScreeningResult{Outcome: UnsupportedOutcome(u.name, models.CheckAML)}
}
