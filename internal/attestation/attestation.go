// Package attestation issues signed tokens summarizing an approved
// verification so downstream services can trust the outcome without
// re-reading the record.
package attestation

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vouch/internal/verification/models"
)

// Claims are the attestation token claims.
type Claims struct {
	UserID          string  `json:"user_id"`
	SubmissionID    string  `json:"submission_id"`
	Tier            string  `json:"tier"`
	Country         string  `json:"country"`
	ConfidenceScore float64 `json:"confidence_score"`
	jwt.RegisteredClaims
}

// Issuer signs and validates attestation tokens.
type Issuer struct {
	signingKey []byte
	issuer     string
	validity   time.Duration
}

// NewIssuer constructs an Issuer. Validity bounds how long an attestation is
// accepted before the holder must re-verify.
func NewIssuer(signingKey, issuer string, validity time.Duration) *Issuer {
	return &Issuer{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		validity:   validity,
	}
}

// Issue signs an attestation for an approved record. Non-approved records
// never receive attestations.
func (i *Issuer) Issue(record *models.Record) (string, error) {
	if record.Status != models.StatusApproved {
		return "", fmt.Errorf("cannot attest record with status %s", record.Status)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:          record.UserID,
		SubmissionID:    record.SubmissionID,
		Tier:            record.Tier.String(),
		Country:         record.Country,
		ConfidenceScore: record.ConfidenceScore,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    i.issuer,
			Subject:   record.UserID,
			ID:        uuid.NewString(),
		},
	})

	return token.SignedString(i.signingKey)
}

// Validate parses and verifies an attestation token.
func (i *Issuer) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return i.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("attestation expired: %w", err)
		}
		return nil, fmt.Errorf("invalid attestation: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid attestation claims")
	}
	return claims, nil
}
