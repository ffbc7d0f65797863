package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PostgresStore persists audit events in PostgreSQL. The driver (lib/pq) is
// registered by the binary that opens the database.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const insertEventSQL = `
INSERT INTO audit_events (
	id, occurred_at, action, user_id, submission_id, tier, country,
	decision, reason, auto_approved, confidence, subject_id_hash
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, insertEventSQL,
		event.ID,
		event.Timestamp,
		string(event.Action),
		event.UserID,
		event.SubmissionID,
		event.Tier,
		event.Country,
		event.Decision,
		event.Reason,
		event.AutoApproved,
		event.Confidence,
		event.SubjectIDHash,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}
