// Package audit records verification decisions for compliance traceability.
// Events carry derived facts and hashed subject identifiers, never raw
// evidence.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action names the audited operation.
type Action string

const (
	ActionVerificationDecided Action = "verification_decided"
	ActionSanctionsHit        Action = "sanctions_hit"
)

// Event is emitted from the orchestrator to capture a finalized decision.
// Keep it transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID           uuid.UUID
	Timestamp    time.Time
	Action       Action
	UserID       string
	SubmissionID string
	Tier         string
	Country      string
	Decision     string
	Reason       string
	AutoApproved bool
	Confidence   float64
	// SubjectIDHash is a SHA-256 hash of the national identifier involved,
	// for traceability without storing raw PII. Empty when no identifier
	// was part of the submission.
	SubjectIDHash string
}
