package verification

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"vouch/internal/verification/cache"
	"vouch/internal/verification/models"
	"vouch/internal/verification/policy"
	"vouch/internal/verification/providers"
)

// planChecks selects every check the tier requires for which the caller
// supplied the necessary evidence. A required check with missing evidence is
// skipped entirely; it is absent from the aggregate, not zeroed.
func planChecks(tier models.Tier, ev models.Evidence) []models.CheckType {
	required := policy.RequiredChecks(tier)

	var planned []models.CheckType
	for _, check := range models.AllChecks {
		if !required[check] {
			continue
		}
		if evidenceSupplied(check, ev) {
			planned = append(planned, check)
		}
	}
	return planned
}

func evidenceSupplied(check models.CheckType, ev models.Evidence) bool {
	switch check {
	case models.CheckEmail:
		return ev.Email != ""
	case models.CheckPhone:
		return ev.Phone != ""
	case models.CheckIDDocument:
		return ev.IDNumber != "" || len(ev.IDDocument) > 0
	case models.CheckFaceMatch:
		return len(ev.Selfie) > 0
	case models.CheckAddress:
		return ev.ResidentialAddress != "" || len(ev.ProofOfAddress) > 0
	case models.CheckTaxID:
		return ev.TaxID != ""
	case models.CheckAML:
		return ev.FullName != ""
	}
	return false
}

// checkSlots gives every concurrent check its own result slot so the fan-out
// needs no shared mutable state; results are merged after the join.
type checkSlots struct {
	idDocument *models.IDDocumentResult
	faceMatch  *models.FaceMatchResult
	address    *models.AddressResult
	taxID      *models.TaxIDResult
	email      *models.EmailResult
	phone      *models.PhoneResult
	aml        *models.AMLScreeningResult
}

// executedCheck is one scoring tuple tracked per executed check.
type executedCheck struct {
	check      models.CheckType
	passed     bool
	confidence int
}

// runChecks fans the planned checks out concurrently, one goroutine per
// check, each bounded by the per-check timeout. A failing check records its
// failure in its own slot and never cancels its siblings, so the goroutines
// always return nil to the group.
func (s *Service) runChecks(ctx context.Context, req Request, planned []models.CheckType) *checkSlots {
	slots := &checkSlots{}
	g, ctx := errgroup.WithContext(ctx)

	for _, check := range planned {
		g.Go(func() error {
			start := time.Now()
			s.runCheck(ctx, req, check, slots)
			s.metrics.ObserveCheckLatency(string(check), time.Since(start))
			return nil
		})
	}

	// The group carries no errors; Wait is the fan-in barrier that
	// guarantees the decision step observes every result.
	_ = g.Wait()
	return slots
}

func (s *Service) runCheck(ctx context.Context, req Request, check models.CheckType, slots *checkSlots) {
	ctx, cancel := context.WithTimeout(ctx, s.checkTimeout)
	defer cancel()

	ev := req.Evidence
	switch check {
	case models.CheckEmail:
		result := s.resolver.Email().VerifyEmail(ctx, ev.Email)
		slots.email = &result

	case models.CheckPhone:
		result := s.resolver.Phone().VerifyPhone(ctx, ev.Phone, req.Country)
		slots.phone = &result

	case models.CheckIDDocument:
		provider, err := s.resolver.ForCountry(req.Country)
		if err != nil {
			slots.idDocument = &models.IDDocumentResult{Outcome: resolveFailure(err)}
			return
		}
		result := provider.VerifyIDDocument(ctx, providers.IDDocumentRequest{
			Country:       req.Country,
			IDNumber:      ev.IDNumber,
			DocumentType:  ev.DocumentType,
			FullName:      ev.FullName,
			DateOfBirth:   ev.DateOfBirth,
			DocumentImage: ev.IDDocument,
		})
		slots.idDocument = &result

	case models.CheckFaceMatch:
		provider, err := s.resolver.ForCountry(req.Country)
		if err != nil {
			slots.faceMatch = &models.FaceMatchResult{Outcome: resolveFailure(err)}
			return
		}
		result := provider.VerifyFaceMatch(ctx, providers.FaceMatchRequest{
			Country:       req.Country,
			IDNumber:      ev.IDNumber,
			DocumentImage: ev.IDDocument,
			Selfie:        ev.Selfie,
		})
		slots.faceMatch = &result

	case models.CheckAddress:
		provider, err := s.resolver.ForCountry(req.Country)
		if err != nil {
			slots.address = &models.AddressResult{Outcome: resolveFailure(err)}
			return
		}
		result := provider.VerifyAddress(ctx, providers.AddressRequest{
			Country:       req.Country,
			Address:       ev.ResidentialAddress,
			ProofDocument: ev.ProofOfAddress,
		})
		slots.address = &result

	case models.CheckTaxID:
		provider, err := s.resolver.ForCountry(req.Country)
		if err != nil {
			slots.taxID = &models.TaxIDResult{Outcome: resolveFailure(err)}
			return
		}
		result := provider.VerifyTaxID(ctx, providers.TaxIDRequest{
			Country:  req.Country,
			TaxID:    ev.TaxID,
			FullName: ev.FullName,
		})
		slots.taxID = &result

	case models.CheckAML:
		result := s.screenAML(ctx, req)
		slots.aml = &result
	}
}

func resolveFailure(err error) models.Outcome {
	return models.FailedOutcome("", "provider resolution failed: "+err.Error())
}

// screenAML consults the screening cache before calling the vendor. Cache
// trouble degrades to a vendor call; it never fails the check.
func (s *Service) screenAML(ctx context.Context, req Request) models.AMLScreeningResult {
	ev := req.Evidence
	key := cache.SubjectKey(ev.FullName, ev.DateOfBirth, req.Country)

	if s.screenings != nil {
		cached, err := s.screenings.Get(ctx, key)
		if err == nil {
			return *cached
		}
		if !errors.Is(err, cache.ErrMiss) && s.logger != nil {
			s.logger.WarnContext(ctx, "screening cache read failed", "error", err)
		}
	}

	result := s.resolver.AML().ScreenAML(ctx, providers.AMLRequest{
		FullName:    ev.FullName,
		DateOfBirth: ev.DateOfBirth,
		Country:     req.Country,
	})

	if s.screenings != nil && result.Success {
		if err := s.screenings.Set(ctx, key, result, s.screeningTTL); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "screening cache write failed", "error", err)
		}
	}
	return result
}

// merge moves the joined results into the record's details, derives the
// per-check verified flags, and returns the scoring tuples.
func (slots *checkSlots) merge(details *models.Details) []executedCheck {
	var executed []executedCheck

	record := func(check models.CheckType, o *models.Outcome) {
		o.Verified = o.Passed()
		executed = append(executed, executedCheck{
			check:      check,
			passed:     o.Verified,
			confidence: o.Confidence,
		})
	}

	if slots.idDocument != nil {
		details.IDDocument = slots.idDocument
		record(models.CheckIDDocument, &details.IDDocument.Outcome)
	}
	if slots.faceMatch != nil {
		details.FaceMatch = slots.faceMatch
		record(models.CheckFaceMatch, &details.FaceMatch.Outcome)
	}
	if slots.address != nil {
		details.Address = slots.address
		record(models.CheckAddress, &details.Address.Outcome)
	}
	if slots.taxID != nil {
		details.TaxID = slots.taxID
		record(models.CheckTaxID, &details.TaxID.Outcome)
	}
	if slots.email != nil {
		details.Email = slots.email
		record(models.CheckEmail, &details.Email.Outcome)
	}
	if slots.phone != nil {
		details.Phone = slots.phone
		record(models.CheckPhone, &details.Phone.Outcome)
	}
	if slots.aml != nil {
		details.AML = slots.aml
		record(models.CheckAML, &details.AML.Outcome)
	}

	return executed
}

// meanConfidence is the arithmetic mean over executed checks only; a failed
// check contributes its low confidence, a skipped check contributes nothing.
func meanConfidence(executed []executedCheck) float64 {
	if len(executed) == 0 {
		return 0
	}
	total := 0
	for _, e := range executed {
		total += e.confidence
	}
	return float64(total) / float64(len(executed))
}
