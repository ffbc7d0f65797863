//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vouch/internal/verification/models"
	"vouch/pkg/testutil/containers"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	client := containers.Redis(t)
	store := NewRedisStore(client)
	ctx := context.Background()
	key := SubjectKey("Ada Obi", "1990-04-02", "NG")

	_, err := store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)

	stored := models.AMLScreeningResult{
		Outcome:   models.Outcome{Success: true, Confidence: 95, Provider: "certiscreen"},
		RiskScore: 42,
		Matches: []models.AMLMatch{
			{Type: "pep", Score: 42, Detail: "regional councillor"},
		},
	}
	require.NoError(t, store.Set(ctx, key, stored, time.Minute))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 42, got.RiskScore)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, "pep", got.Matches[0].Type)
}

func TestRedisStoreTTL(t *testing.T) {
	client := containers.Redis(t)
	store := NewRedisStore(client)
	ctx := context.Background()
	key := SubjectKey("Ada Obi", "1990-04-02", "GH")

	require.NoError(t, store.Set(ctx, key, models.AMLScreeningResult{}, time.Second))

	_, err := store.Get(ctx, key)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, err := store.Get(ctx, key)
		return err == ErrMiss
	}, 5*time.Second, 100*time.Millisecond)
}

func TestRedisStoreKeysCarryNamespace(t *testing.T) {
	client := containers.Redis(t)
	store := NewRedisStore(client)
	ctx := context.Background()
	key := SubjectKey("Ada Obi", "1990-04-02", "KE")

	require.NoError(t, store.Set(ctx, key, models.AMLScreeningResult{}, time.Minute))

	keys, err := client.Keys(ctx, "vouch:aml:*").Result()
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}
