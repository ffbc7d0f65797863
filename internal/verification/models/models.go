package models

import (
	"time"

	"github.com/google/uuid"
)

// Tier is the trust level a platform user account can hold. Higher tiers
// demand a stricter set of verification checks.
type Tier int

const (
	Tier1 Tier = 1
	Tier2 Tier = 2
	Tier3 Tier = 3
)

// Valid reports whether the tier is one of the three known levels.
func (t Tier) Valid() bool {
	return t >= Tier1 && t <= Tier3
}

func (t Tier) String() string {
	switch t {
	case Tier1:
		return "tier1"
	case Tier2:
		return "tier2"
	case Tier3:
		return "tier3"
	}
	return "unknown"
}

// Status enumerates the lifecycle states of a verification record.
// Approved and Rejected are terminal. PendingReview and RequiresResubmission
// wait on a human reviewer; that transition happens outside this engine.
type Status string

const (
	StatusPending              Status = "pending"
	StatusApproved             Status = "approved"
	StatusRejected             Status = "rejected"
	StatusPendingReview        Status = "pending_review"
	StatusRequiresResubmission Status = "requires_resubmission"
)

// CheckType identifies one of the seven verification domains.
type CheckType string

const (
	CheckIDDocument CheckType = "id_document"
	CheckFaceMatch  CheckType = "face_match"
	CheckAddress    CheckType = "address"
	CheckTaxID      CheckType = "tax_id"
	CheckEmail      CheckType = "email"
	CheckPhone      CheckType = "phone"
	CheckAML        CheckType = "aml_screening"
)

// AllChecks lists every check domain in a stable order.
var AllChecks = []CheckType{
	CheckIDDocument,
	CheckFaceMatch,
	CheckAddress,
	CheckTaxID,
	CheckEmail,
	CheckPhone,
	CheckAML,
}

// Evidence is the loosely-typed bag of material a caller supplies with a
// verification request. Only fields relevant to the tier's required checks
// need to be present; missing evidence skips the corresponding check.
type Evidence struct {
	Email              string            `json:"email,omitempty"`
	Phone              string            `json:"phone,omitempty"`
	FullName           string            `json:"full_name,omitempty"`
	DateOfBirth        string            `json:"date_of_birth,omitempty"`
	IDNumber           string            `json:"id_number,omitempty"`
	DocumentType       string            `json:"document_type,omitempty"`
	IDDocument         []byte            `json:"id_document,omitempty"`
	Selfie             []byte            `json:"selfie,omitempty"`
	ProofOfAddress     []byte            `json:"proof_of_address,omitempty"`
	ResidentialAddress string            `json:"residential_address,omitempty"`
	TaxID              string            `json:"tax_id,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

// Record is the engine's output for one (user, submission) invocation. The
// caller owns it after creation; the engine does not persist it.
type Record struct {
	ID                   uuid.UUID `json:"id"`
	UserID               string    `json:"user_id"`
	SubmissionID         string    `json:"submission_id"`
	Tier                 Tier      `json:"tier"`
	Country              string    `json:"country"`
	Status               Status    `json:"status"`
	Details              Details   `json:"details"`
	AutoApproved         bool      `json:"auto_approved"`
	ConfidenceScore      float64   `json:"confidence_score"`
	RequiresManualReview bool      `json:"requires_manual_review"`
	RejectionReason      string    `json:"rejection_reason,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	CompletedAt          time.Time `json:"completed_at"`
}
