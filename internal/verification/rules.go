package verification

import (
	"fmt"

	"vouch/internal/verification/models"
	"vouch/internal/verification/policy"
)

// ruleOutcome is the tier policy's verdict on an aggregated record.
type ruleOutcome struct {
	status         models.Status
	autoApproved   bool
	requiresReview bool
	reason         string
}

// decide applies the tier's decision policy to the joined results. Pure
// logic: no I/O, no side effects. The sanctions hard stop is handled before
// this point.
//
// Rule order per tier:
//   - Tier1: threshold pass, or the lenient email+phone fallback.
//   - Tier2: threshold pass only.
//   - Tier3: human adjudication always; confidence never auto-approves.
func decide(tier models.Tier, executed []executedCheck, score float64, details *models.Details) (ruleOutcome, error) {
	if tier == models.Tier3 {
		return ruleOutcome{
			status:         models.StatusPendingReview,
			requiresReview: true,
		}, nil
	}

	threshold, ok := policy.ApprovalThreshold(tier)
	if !ok {
		return ruleOutcome{}, fmt.Errorf("no approval threshold configured for %s", tier)
	}

	if meetsThreshold(threshold, executed, score) {
		return ruleOutcome{
			status:       models.StatusApproved,
			autoApproved: true,
		}, nil
	}

	if tier == models.Tier1 && details.CheckVerified(models.CheckEmail) && details.CheckVerified(models.CheckPhone) {
		return ruleOutcome{
			status:       models.StatusApproved,
			autoApproved: true,
		}, nil
	}

	return ruleOutcome{
		status:         models.StatusPendingReview,
		requiresReview: true,
	}, nil
}

// meetsThreshold reports whether every must-pass check was executed and
// passed, and the mean confidence reaches the tier minimum.
func meetsThreshold(threshold policy.Threshold, executed []executedCheck, score float64) bool {
	if score < threshold.MinConfidence {
		return false
	}

	passed := make(map[models.CheckType]bool, len(executed))
	for _, e := range executed {
		passed[e.check] = e.passed
	}

	for _, required := range threshold.MustPass {
		if !passed[required] {
			return false
		}
	}
	return true
}
