// Package cache stores recent AML screening results so repeat submissions do
// not re-bill the screening vendor. Entries are keyed by a hash of the
// screened identity, never by raw PII.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"vouch/internal/verification/models"
)

// ErrMiss reports that no live entry exists for the key.
var ErrMiss = errors.New("screening cache miss")

// Store is the screening cache contract. Implementations must treat entries
// as expendable: orchestration degrades to a vendor call on any error.
type Store interface {
	Get(ctx context.Context, key string) (*models.AMLScreeningResult, error)
	Set(ctx context.Context, key string, result models.AMLScreeningResult, ttl time.Duration) error
}

// SubjectKey derives the cache key from the screened identity. SHA-256 keeps
// names and birthdates out of cache storage.
func SubjectKey(fullName, dateOfBirth, country string) string {
	sum := sha256.Sum256([]byte(fullName + "|" + dateOfBirth + "|" + country))
	return hex.EncodeToString(sum[:])
}

type memoryEntry struct {
	result    models.AMLScreeningResult
	expiresAt time.Time
}

// Memory is an in-process cache for tests and single-instance deployments.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory builds an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(_ context.Context, key string) (*models.AMLScreeningResult, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrMiss
	}
	result := entry.result
	return &result, nil
}

func (m *Memory) Set(_ context.Context, key string, result models.AMLScreeningResult, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{
		result:    result,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}
