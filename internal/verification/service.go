// Package verification is the orchestration engine: it plans the checks a
// tier requires, fans them out across capability providers, aggregates the
// results into a confidence score, and applies the tier's decision policy.
package verification

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vouch/internal/audit"
	"vouch/internal/verification/cache"
	"vouch/internal/verification/metrics"
	"vouch/internal/verification/models"
	"vouch/internal/verification/providers"
)

// SanctionsRejectionReason is the fixed reason recorded on a sanctions match.
const SanctionsRejectionReason = "sanctions list match"

const defaultCheckTimeout = 10 * time.Second

// Resolver supplies a provider per check domain. *registry.Registry
// implements it; tests substitute mocks.
type Resolver interface {
	ForCountry(country string) (providers.Provider, error)
	Email() providers.Provider
	Phone() providers.Provider
	AML() providers.Provider
}

// Request is one verification invocation for a (user, submission) pair.
type Request struct {
	UserID       string
	SubmissionID string
	Tier         models.Tier
	Country      string
	Evidence     models.Evidence
}

// Service is the verification orchestrator.
type Service struct {
	resolver     Resolver
	screenings   cache.Store
	screeningTTL time.Duration
	auditor      *audit.Publisher
	logger       *slog.Logger
	metrics      *metrics.Metrics
	checkTimeout time.Duration
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithScreeningCache reuses recent AML screening results instead of
// re-calling the vendor for the same subject.
func WithScreeningCache(store cache.Store, ttl time.Duration) Option {
	return func(s *Service) {
		s.screenings = store
		s.screeningTTL = ttl
	}
}

// WithAuditor emits a compliance event per finalized record.
func WithAuditor(p *audit.Publisher) Option {
	return func(s *Service) { s.auditor = p }
}

// WithCheckTimeout bounds each individual provider call.
func WithCheckTimeout(d time.Duration) Option {
	return func(s *Service) { s.checkTimeout = d }
}

// NewService constructs the orchestrator.
func NewService(resolver Resolver, opts ...Option) *Service {
	s := &Service{
		resolver:     resolver,
		checkTimeout: defaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process runs every required check the supplied evidence allows, aggregates
// the results, and finalizes the record per the tier's decision policy.
// Per-check failures are absorbed into the record; the returned error covers
// only orchestration defects (invalid request, malformed policy).
func (s *Service) Process(ctx context.Context, req Request) (*models.Record, error) {
	start := time.Now()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	record := &models.Record{
		ID:           uuid.New(),
		UserID:       req.UserID,
		SubmissionID: req.SubmissionID,
		Tier:         req.Tier,
		Country:      req.Country,
		Status:       models.StatusPending,
		CreatedAt:    start.UTC(),
	}

	planned := planChecks(req.Tier, req.Evidence)
	results := s.runChecks(ctx, req, planned)
	executed := results.merge(&record.Details)

	record.ConfidenceScore = meanConfidence(executed)

	// Sanctions short-circuit: a positive match is final regardless of
	// every other signal.
	if record.Details.AML != nil && record.Details.AML.Sanctioned {
		record.Status = models.StatusRejected
		record.AutoApproved = false
		record.RequiresManualReview = true
		record.RejectionReason = SanctionsRejectionReason
		s.finalize(ctx, record, start, audit.ActionSanctionsHit, req)
		return record, nil
	}

	outcome, err := decide(req.Tier, executed, record.ConfidenceScore, &record.Details)
	if err != nil {
		return nil, err
	}
	record.Status = outcome.status
	record.AutoApproved = outcome.autoApproved
	record.RequiresManualReview = outcome.requiresReview
	record.RejectionReason = outcome.reason

	s.finalize(ctx, record, start, audit.ActionVerificationDecided, req)
	return record, nil
}

func validateRequest(req Request) error {
	if req.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if req.SubmissionID == "" {
		return fmt.Errorf("submission id is required")
	}
	if !req.Tier.Valid() {
		return fmt.Errorf("unknown verification tier %d", req.Tier)
	}
	if req.Country == "" {
		return fmt.Errorf("country is required")
	}
	return nil
}

func (s *Service) finalize(ctx context.Context, record *models.Record, start time.Time, action audit.Action, req Request) {
	record.CompletedAt = time.Now().UTC()

	s.metrics.IncrementOutcome(string(record.Status), record.Tier.String())
	s.metrics.ObserveProcessLatency(time.Since(start))

	if s.logger != nil {
		s.logger.InfoContext(ctx, "verification finalized",
			"user_id", record.UserID,
			"submission_id", record.SubmissionID,
			"tier", record.Tier.String(),
			"status", record.Status,
			"auto_approved", record.AutoApproved,
			"confidence_score", record.ConfidenceScore,
		)
	}

	if s.auditor != nil {
		s.auditor.Emit(ctx, audit.Event{
			ID:            uuid.New(),
			Action:        action,
			UserID:        record.UserID,
			SubmissionID:  record.SubmissionID,
			Tier:          record.Tier.String(),
			Country:       record.Country,
			Decision:      string(record.Status),
			Reason:        record.RejectionReason,
			AutoApproved:  record.AutoApproved,
			Confidence:    record.ConfidenceScore,
			SubjectIDHash: hashSubjectID(req.Evidence.IDNumber),
		})
	}
}

func hashSubjectID(idNumber string) string {
	if idNumber == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(idNumber))
	return hex.EncodeToString(sum[:])
}
