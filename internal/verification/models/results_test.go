package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomePassed(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    bool
	}{
		{"success above bar", Outcome{Success: true, Confidence: 90}, true},
		{"success at bar", Outcome{Success: true, Confidence: PassingConfidence}, true},
		{"success below bar", Outcome{Success: true, Confidence: 40}, false},
		{"failure with high confidence", Outcome{Success: false, Confidence: 95}, false},
		{"zero value", Outcome{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.Passed())
		})
	}
}

func TestFailedOutcome(t *testing.T) {
	o := FailedOutcome("smileid", "vendor unreachable")

	assert.False(t, o.Success)
	assert.Zero(t, o.Confidence)
	assert.Equal(t, "smileid", o.Provider)
	assert.Equal(t, "vendor unreachable", o.Error)
}

func TestDetailsOutcome(t *testing.T) {
	details := Details{
		Email: &EmailResult{Outcome: Outcome{Success: true, Confidence: 90, Verified: true}},
		AML:   &AMLScreeningResult{Outcome: Outcome{Success: true, Confidence: 95}},
	}

	assert.NotNil(t, details.Outcome(CheckEmail))
	assert.NotNil(t, details.Outcome(CheckAML))
	assert.Nil(t, details.Outcome(CheckPhone))
	assert.Nil(t, details.Outcome(CheckIDDocument))

	assert.True(t, details.CheckVerified(CheckEmail))
	assert.False(t, details.CheckVerified(CheckAML))
	assert.False(t, details.CheckVerified(CheckTaxID))
}

func TestTier(t *testing.T) {
	assert.True(t, Tier2.Valid())
	assert.False(t, Tier(0).Valid())
	assert.False(t, Tier(4).Valid())
	assert.Equal(t, "tier2", Tier2.String())
	assert.Equal(t, "unknown", Tier(9).String())
}
