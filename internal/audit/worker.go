package audit

import (
	"context"
	"log/slog"
	"time"
)

// Publisher hands events to a background worker over a buffered channel so
// emitting a decision never blocks on storage. A full buffer drops the event
// with a logged warning; verification outcomes must not fail on audit lag.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

// NewPublisher builds a publisher with the given buffer size.
func NewPublisher(buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Publisher{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Emit enqueues an event for persistence.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	select {
	case p.inbox <- event:
	default:
		if p.logger != nil {
			p.logger.WarnContext(ctx, "audit buffer full, dropping event",
				"action", event.Action,
				"submission_id", event.SubmissionID,
			)
		}
	}
}

// Worker consumes events from a publisher and persists them. It keeps
// background processing testable without wiring queue implementations.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

// NewWorker builds a worker draining the publisher's inbox into the store.
func NewWorker(store Store, publisher *Publisher, logger *slog.Logger) *Worker {
	return &Worker{
		store:  store,
		inbox:  publisher.inbox,
		logger: logger,
	}
}

// Run blocks until ctx is done, appending each event as it arrives. Store
// failures are logged and the worker keeps going.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				if w.logger != nil {
					w.logger.ErrorContext(ctx, "audit append failed",
						"action", event.Action,
						"error", err,
					)
				}
			}
		}
	}
}
