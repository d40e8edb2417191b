package repository

import (
	"context"
	"fmt"

	"portfolio/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var submissionColumns = []string{
	"id", "name", "email", "phone", "subject", "message", "interest_type",
	"age_group", "submitted_at", "is_read", "admin_notes",
}

// Visitor-supplied columns are immutable once stored.
var submissionUpdatable = map[string]bool{
	"is_read":     true,
	"admin_notes": true,
}

type SubmissionRepo struct {
	baseRepo
}

func NewSubmissionRepo(db *pgxpool.Pool) *SubmissionRepo {
	return &SubmissionRepo{baseRepo: newBaseRepo(db)}
}

func (r *SubmissionRepo) CreateSubmission(ctx context.Context, s models.ContactSubmission) (uuid.UUID, error) {
	const op = "repository.SubmissionRepo.CreateSubmission"

	id, err := r.insert(ctx, r.sb.Insert("contact_submissions").
		Columns(
			"name", "email", "phone", "subject", "message", "interest_type",
			"age_group", "submitted_at", "is_read", "admin_notes",
		).
		Values(
			s.Name, s.Email, s.Phone, s.Subject, s.Message, string(s.InterestType),
			string(s.AgeGroup), s.SubmittedAt, s.IsRead, s.AdminNotes,
		))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *SubmissionRepo) GetSubmissionByID(ctx context.Context, id uuid.UUID) (models.ContactSubmission, error) {
	const op = "repository.SubmissionRepo.GetSubmissionByID"

	s, err := queryOne(ctx, r.db, r.sb.Select(submissionColumns...).
		From("contact_submissions").
		Where(sq.Eq{"id": id}), scanSubmission)
	if err != nil {
		return models.ContactSubmission{}, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (r *SubmissionRepo) UpdateSubmissionFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.SubmissionRepo.UpdateSubmissionFields"

	if err := r.updateFields(ctx, "contact_submissions", id, updates, submissionUpdatable, false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SubmissionRepo) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	const op = "repository.SubmissionRepo.DeleteSubmission"

	if err := r.deleteByID(ctx, "contact_submissions", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListSubmissions returns the inbox, most recent first.
func (r *SubmissionRepo) ListSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.ContactSubmission, error) {
	const op = "repository.SubmissionRepo.ListSubmissions"

	qb := r.sb.Select(submissionColumns...).From("contact_submissions")
	if filter.IsRead != nil {
		qb = qb.Where(sq.Eq{"is_read": *filter.IsRead})
	}
	if filter.InterestType != "" {
		qb = qb.Where(sq.Eq{"interest_type": string(filter.InterestType)})
	}
	if filter.AgeGroup != "" {
		qb = qb.Where(sq.Eq{"age_group": string(filter.AgeGroup)})
	}
	if filter.Query != "" {
		qb = qb.Where(search(filter.Query, "name", "email", "subject", "message"))
	}

	items, err := queryAll(ctx, r.db, qb.OrderBy("submitted_at DESC"), scanSubmission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func scanSubmission(row scanner) (models.ContactSubmission, error) {
	var (
		s            models.ContactSubmission
		interestType string
		ageGroup     string
	)
	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message, &interestType,
		&ageGroup, &s.SubmittedAt, &s.IsRead, &s.AdminNotes,
	)
	s.InterestType = models.InterestType(interestType)
	s.AgeGroup = models.AgeGroup(ageGroup)
	return s, err
}
