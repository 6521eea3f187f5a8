package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eallis/wiifolio/internal/logging"
	"github.com/google/uuid"
)

// ErrSubmissionNotFound is returned by Outbox.Get for unknown ids.
var ErrSubmissionNotFound = errors.New("submission not found")

// Outbox stores submissions locally. There is no delivery backend.
type Outbox interface {
	Record(ctx context.Context, s Submission) error
	Get(ctx context.Context, id uuid.UUID) (Submission, error)
	List(ctx context.Context, limit int) ([]Submission, error)
	Count(ctx context.Context) (int, error)
}

// DefaultDelay is the simulated sending time.
const DefaultDelay = 1500 * time.Millisecond

// Submitter validates a form, simulates sending it and records it in the outbox.
type Submitter struct {
	outbox Outbox
	delay  time.Duration
	now    func() time.Time
	newID  func() uuid.UUID
	logger logging.Logger
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*Submitter)

// WithDelay overrides DefaultDelay. Negative values are treated as zero.
func WithDelay(d time.Duration) SubmitterOption {
	return func(s *Submitter) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithClock sets the time source for CreatedAt.
func WithClock(now func() time.Time) SubmitterOption {
	return func(s *Submitter) { s.now = now }
}

// NewSubmitter creates a Submitter. outbox may be nil, in which case
// submissions are validated and acknowledged but not stored.
func NewSubmitter(outbox Outbox, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		outbox: outbox,
		delay:  DefaultDelay,
		now:    time.Now,
		newID:  uuid.New,
		logger: logging.With("component", "contact"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates form, waits for the configured delay and records it.
// Cancelling ctx during the wait aborts without recording.
func (s *Submitter) Submit(ctx context.Context, form Form) (Submission, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return Submission{}, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			s.logger.Debug("submission cancelled", "error", ctx.Err())
			return Submission{}, ctx.Err()
		case <-timer.C:
		}
	}

	sub := Submission{ID: s.newID(), Form: form, CreatedAt: s.now().UTC()}
	if s.outbox != nil {
		if err := s.outbox.Record(ctx, sub); err != nil {
			s.logger.Error("failed to record submission", "id", sub.ID.String(), "error", err)
			return Submission{}, fmt.Errorf("record submission: %w", err)
		}
	}
	s.logger.Info("submission recorded", "id", sub.ID.String(), "subject", form.Subject, "email", form.Email)
	return sub, nil
}
