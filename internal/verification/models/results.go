package models

import "time"

// PassingConfidence is the minimum confidence at which a successful check
// counts as individually verified. Results below it still contribute their
// value to the aggregate score.
const PassingConfidence = 60

// Outcome is the core every check result carries regardless of domain.
// Confidence is 0-100. Error is set iff Success is false.
type Outcome struct {
	Success    bool      `json:"success"`
	Confidence int       `json:"confidence"`
	Provider   string    `json:"provider"`
	VerifiedAt time.Time `json:"verified_at,omitempty"`
	Error      string    `json:"error,omitempty"`
	// Verified is the caller-facing convenience flag, derived from Success
	// and Confidence when the result is merged into Details.
	Verified bool `json:"verified"`
}

// Passed reports whether the check both succeeded and met the passing
// confidence bar.
func (o Outcome) Passed() bool {
	return o.Success && o.Confidence >= PassingConfidence
}

// FailedOutcome builds the uniform failure shape: no success, zero
// confidence, human-readable reason.
func FailedOutcome(provider, reason string) Outcome {
	return Outcome{
		Success:    false,
		Confidence: 0,
		Provider:   provider,
		Error:      reason,
	}
}

// IDDocumentResult carries identity fields extracted from a government ID
// document or a national-identifier registry lookup.
type IDDocumentResult struct {
	Outcome
	FullName       string `json:"full_name,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	IDNumber       string `json:"id_number,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	IssuingCountry string `json:"issuing_country,omitempty"`
}

// FaceMatchResult reports a selfie-to-document biometric comparison.
type FaceMatchResult struct {
	Outcome
	MatchScore int `json:"match_score"`
}

// AddressResult reports proof-of-address verification.
type AddressResult struct {
	Outcome
	NormalizedAddress string `json:"normalized_address,omitempty"`
}

// TaxIDResult reports a tax-identifier registry check.
type TaxIDResult struct {
	Outcome
	TaxIDType string `json:"tax_id_type,omitempty"`
}

// EmailResult reports email-address validation.
type EmailResult struct {
	Outcome
	Normalized string `json:"normalized,omitempty"`
	Disposable bool   `json:"disposable"`
}

// PhoneResult reports phone-number validation and, for SMS vendors, whether
// an OTP was dispatched.
type PhoneResult struct {
	Outcome
	E164         string `json:"e164,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
	OTPDelivered bool   `json:"otp_delivered"`
}

// AMLMatch is one watchlist hit from a screening vendor.
type AMLMatch struct {
	Type   string `json:"type"` // sanctions, pep, adverse_media
	Score  int    `json:"score"`
	Detail string `json:"detail,omitempty"`
}

// AMLScreeningResult reports sanctions/PEP/adverse-media screening.
// Confidence is the provider's certainty that screening ran correctly;
// RiskScore is derived from the strongest watchlist match. The two are
// independent numbers and neither is computed from the other.
type AMLScreeningResult struct {
	Outcome
	RiskScore    int        `json:"risk_score"`
	Sanctioned   bool       `json:"sanctioned"`
	PEP          bool       `json:"pep"`
	AdverseMedia bool       `json:"adverse_media"`
	Matches      []AMLMatch `json:"matches,omitempty"`
}

// Details holds at most one result per check domain for a single record.
// It is built by the orchestrator after the fan-out join and never shared
// across requests.
type Details struct {
	IDDocument *IDDocumentResult   `json:"id_document,omitempty"`
	FaceMatch  *FaceMatchResult    `json:"face_match,omitempty"`
	Address    *AddressResult      `json:"address,omitempty"`
	TaxID      *TaxIDResult        `json:"tax_id,omitempty"`
	Email      *EmailResult        `json:"email,omitempty"`
	Phone      *PhoneResult        `json:"phone,omitempty"`
	AML        *AMLScreeningResult `json:"aml_screening,omitempty"`
}

// Outcome returns the common core for the given domain, or nil when that
// check was not executed.
func (d *Details) Outcome(t CheckType) *Outcome {
	switch t {
	case CheckIDDocument:
		if d.IDDocument != nil {
			return &d.IDDocument.Outcome
		}
	case CheckFaceMatch:
		if d.FaceMatch != nil {
			return &d.FaceMatch.Outcome
		}
	case CheckAddress:
		if d.Address != nil {
			return &d.Address.Outcome
		}
	case CheckTaxID:
		if d.TaxID != nil {
			return &d.TaxID.Outcome
		}
	case CheckEmail:
		if d.Email != nil {
			return &d.Email.Outcome
		}
	case CheckPhone:
		if d.Phone != nil {
			return &d.Phone.Outcome
		}
	case CheckAML:
		if d.AML != nil {
			return &d.AML.Outcome
		}
	}
	return nil
}

// CheckVerified reports whether the given domain was executed and passed.
func (d *Details) CheckVerified(t CheckType) bool {
	o := d.Outcome(t)
	return o != nil && o.Verified
}
