package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vouch/internal/verification/models"
)

func TestSubjectKey(t *testing.T) {
	key := SubjectKey("Ada Obi", "1990-04-02", "NG")

	assert.Len(t, key, 64)
	assert.Equal(t, key, SubjectKey("Ada Obi", "1990-04-02", "NG"))
	assert.NotEqual(t, key, SubjectKey("Ada Obi", "1990-04-02", "GH"))
	assert.NotContains(t, key, "Ada", "keys must carry no raw identity data")

	// Field boundaries matter: shifting a character between fields must not
	// collide.
	assert.NotEqual(t, SubjectKey("Ada O", "bi", "NG"), SubjectKey("Ada", "Obi", "NG"))
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	key := SubjectKey("Ada Obi", "1990-04-02", "NG")

	_, err := m.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)

	stored := models.AMLScreeningResult{
		Outcome:   models.Outcome{Success: true, Confidence: 95, Provider: "certiscreen"},
		RiskScore: 12,
		PEP:       true,
	}
	require.NoError(t, m.Set(ctx, key, stored, time.Minute))

	got, err := m.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 12, got.RiskScore)
	assert.True(t, got.PEP)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	key := SubjectKey("Ada Obi", "1990-04-02", "NG")

	require.NoError(t, m.Set(ctx, key, models.AMLScreeningResult{}, 10*time.Millisecond))

	_, err := m.Get(ctx, key)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = m.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	key := SubjectKey("Ada Obi", "1990-04-02", "NG")

	require.NoError(t, m.Set(ctx, key, models.AMLScreeningResult{RiskScore: 5}, time.Minute))

	first, err := m.Get(ctx, key)
	require.NoError(t, err)
	first.RiskScore = 99

	second, err := m.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 5, second.RiskScore)
}
