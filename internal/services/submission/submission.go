package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/metrics"

	"github.com/google/uuid"
)

type SubmissionSaver interface {
	CreateSubmission(ctx context.Context, sub models.ContactSubmission) (uuid.UUID, error)
}

// Service is the visitor write path: validate, then persist.
type Service struct {
	log       *slog.Logger
	validator *Validator
	repo      SubmissionSaver
	now       func() time.Time
}

func New(log *slog.Logger, repo SubmissionSaver) *Service {
	return &Service{
		log:       log,
		validator: NewValidator(),
		repo:      repo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates raw and stores it. Spam and invalid input never reach
// the store.
func (s *Service) Submit(ctx context.Context, raw RawSubmission) (*models.ContactSubmission, error) {
	const op = "submission.Submit"
	log := s.log.With(slog.String("op", op))

	sub, err := s.validator.Validate(raw, s.now())
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.Is(err, ErrSpamSuspected):
			metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeSpam).Inc()
			log.Info("honeypot triggered, submission discarded")
		case errors.As(err, &verr):
			metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
			log.Debug("submission rejected", slog.Any("fields", verr.Fields))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.CreateSubmission(ctx, sub)
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Error("failed to save submission", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sub.ID = id

	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
	log.Info("submission received",
		slog.String("id", id.String()),
		slog.String("interest_type", string(sub.InterestType)),
	)

	return &sub, nil
}
