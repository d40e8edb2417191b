package services

import (
	"context"
	"fmt"

	"portfolio/internal/domain/models"
	"portfolio/internal/transport/http/dto"

	"github.com/google/uuid"
)

// Submissions are created only by visitors through the contact form. The
// administrative surface may read, triage and delete them.

func (s *ContentService) GetSubmission(ctx context.Context, id uuid.UUID) (*models.ContactSubmission, error) {
	const op = "content_service.GetSubmission"

	sub, err := s.repos.Submission.GetSubmissionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &sub, nil
}

func (s *ContentService) UpdateSubmission(ctx context.Context, id uuid.UUID, req dto.UpdateSubmissionRequest) (*models.ContactSubmission, error) {
	const op = "content_service.UpdateSubmission"

	updates := make(map[string]interface{})
	setBool(updates, "is_read", req.IsRead)
	setString(updates, "admin_notes", req.AdminNotes)

	if err := s.repos.Submission.UpdateSubmissionFields(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetSubmission(ctx, id)
}

func (s *ContentService) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	const op = "content_service.DeleteSubmission"

	if err := s.repos.Submission.DeleteSubmission(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *ContentService) ListSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.ContactSubmission, error) {
	const op = "content_service.ListSubmissions"

	items, err := s.repos.Submission.ListSubmissions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}
