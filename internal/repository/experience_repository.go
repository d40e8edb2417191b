package repository

import (
	"context"
	"fmt"

	"portfolio/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

var experienceColumns = []string{
	"id", "company", "role", "start_date", "end_date", "description",
	"company_logo", "is_current", "display_order", "created_at", "updated_at",
}

var experienceUpdatable = map[string]bool{
	"company":       true,
	"role":          true,
	"start_date":    true,
	"end_date":      true,
	"description":   true,
	"company_logo":  true,
	"is_current":    true,
	"display_order": true,
}

type ExperienceRepo struct {
	baseRepo
}

func NewExperienceRepo(db *pgxpool.Pool) *ExperienceRepo {
	return &ExperienceRepo{baseRepo: newBaseRepo(db)}
}

func (r *ExperienceRepo) CreateExperience(ctx context.Context, e models.Experience) (uuid.UUID, error) {
	const op = "repository.ExperienceRepo.CreateExperience"

	id, err := r.insert(ctx, r.sb.Insert("experiences").
		Columns("company", "role", "start_date", "end_date", "description", "company_logo", "is_current", "display_order").
		Values(e.Company, e.Role, e.StartDate, e.EndDate, e.Description, e.CompanyLogo, e.IsCurrent, e.DisplayOrder))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ExperienceRepo) GetExperienceByID(ctx context.Context, id uuid.UUID) (models.Experience, error) {
	const op = "repository.ExperienceRepo.GetExperienceByID"

	e, err := queryOne(ctx, r.db, r.sb.Select(experienceColumns...).
		From("experiences").
		Where(sq.Eq{"id": id}), scanExperience)
	if err != nil {
		return models.Experience{}, fmt.Errorf("%s: %w", op, err)
	}

	return e, nil
}

func (r *ExperienceRepo) UpdateExperienceFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.ExperienceRepo.UpdateExperienceFields"

	if err := r.updateFields(ctx, "experiences", id, updates, experienceUpdatable, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ExperienceRepo) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ExperienceRepo.DeleteExperience"

	if err := r.deleteByID(ctx, "experiences", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListExperiences returns entries newest first, ties broken by display_order.
func (r *ExperienceRepo) ListExperiences(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error) {
	const op = "repository.ExperienceRepo.ListExperiences"

	qb := r.sb.Select(experienceColumns...).From("experiences")
	if filter.IsCurrent != nil {
		qb = qb.Where(sq.Eq{"is_current": *filter.IsCurrent})
	}
	if filter.Query != "" {
		qb = qb.Where(search(filter.Query, "role", "company", "description"))
	}

	items, err := queryAll(ctx, r.db, qb.OrderBy("start_date DESC", "display_order ASC"), scanExperience)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func scanExperience(row scanner) (models.Experience, error) {
	var e models.Experience
	err := row.Scan(
		&e.ID, &e.Company, &e.Role, &e.StartDate, &e.EndDate, &e.Description,
		&e.CompanyLogo, &e.IsCurrent, &e.DisplayOrder, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

var certificationColumns = []string{
	"id", "name", "issuing_organization", "issue_date", "credential_id",
	"certificate_image", "display_order", "created_at", "updated_at",
}

var certificationUpdatable = map[string]bool{
	"name":                 true,
	"issuing_organization": true,
	"issue_date":           true,
	"credential_id":        true,
	"certificate_image":    true,
	"display_order":        true,
}

type CertificationRepo struct {
	baseRepo
}

func NewCertificationRepo(db *pgxpool.Pool) *CertificationRepo {
	return &CertificationRepo{baseRepo: newBaseRepo(db)}
}

// CreateCertification fails with storage.ErrUniqueViolation on a duplicate name.
func (r *CertificationRepo) CreateCertification(ctx context.Context, c models.Certification) (uuid.UUID, error) {
	const op = "repository.CertificationRepo.CreateCertification"

	id, err := r.insert(ctx, r.sb.Insert("certifications").
		Columns("name", "issuing_organization", "issue_date", "credential_id", "certificate_image", "display_order").
		Values(c.Name, c.IssuingOrganization, c.IssueDate, c.CredentialID, c.CertificateImage, c.DisplayOrder))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *CertificationRepo) GetCertificationByID(ctx context.Context, id uuid.UUID) (models.Certification, error) {
	const op = "repository.CertificationRepo.GetCertificationByID"

	c, err := queryOne(ctx, r.db, r.sb.Select(certificationColumns...).
		From("certifications").
		Where(sq.Eq{"id": id}), scanCertification)
	if err != nil {
		return models.Certification{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (r *CertificationRepo) UpdateCertificationFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.CertificationRepo.UpdateCertificationFields"

	if err := r.updateFields(ctx, "certifications", id, updates, certificationUpdatable, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *CertificationRepo) DeleteCertification(ctx context.Context, id uuid.UUID) error {
	const op = "repository.CertificationRepo.DeleteCertification"

	if err := r.deleteByID(ctx, "certifications", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *CertificationRepo) ListCertifications(ctx context.Context, filter models.CertificationFilter) ([]models.Certification, error) {
	const op = "repository.CertificationRepo.ListCertifications"

	qb := r.sb.Select(certificationColumns...).From("certifications")
	if len(filter.Organizations) > 0 {
		qb = qb.Where("issuing_organization = ANY(?)", pq.Array(filter.Organizations))
	}
	if filter.Query != "" {
		qb = qb.Where(search(filter.Query, "name", "issuing_organization", "credential_id"))
	}

	items, err := queryAll(ctx, r.db, qb.OrderBy("issue_date DESC", "display_order ASC"), scanCertification)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func scanCertification(row scanner) (models.Certification, error) {
	var c models.Certification
	err := row.Scan(
		&c.ID, &c.Name, &c.IssuingOrganization, &c.IssueDate, &c.CredentialID,
		&c.CertificateImage, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

var companyLogoColumns = []string{
	"id", "company_name", "logo", "website_url", "display_on_homepage",
	"display_order", "created_at", "updated_at",
}

var companyLogoUpdatable = map[string]bool{
	"company_name":        true,
	"logo":                true,
	"website_url":         true,
	"display_on_homepage": true,
	"display_order":       true,
}

type CompanyLogoRepo struct {
	baseRepo
}

func NewCompanyLogoRepo(db *pgxpool.Pool) *CompanyLogoRepo {
	return &CompanyLogoRepo{baseRepo: newBaseRepo(db)}
}

func (r *CompanyLogoRepo) CreateCompanyLogo(ctx context.Context, c models.CompanyLogo) (uuid.UUID, error) {
	const op = "repository.CompanyLogoRepo.CreateCompanyLogo"

	id, err := r.insert(ctx, r.sb.Insert("company_logos").
		Columns("company_name", "logo", "website_url", "display_on_homepage", "display_order").
		Values(c.CompanyName, c.Logo, c.WebsiteURL, c.DisplayOnHomepage, c.DisplayOrder))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *CompanyLogoRepo) GetCompanyLogoByID(ctx context.Context, id uuid.UUID) (models.CompanyLogo, error) {
	const op = "repository.CompanyLogoRepo.GetCompanyLogoByID"

	c, err := queryOne(ctx, r.db, r.sb.Select(companyLogoColumns...).
		From("company_logos").
		Where(sq.Eq{"id": id}), scanCompanyLogo)
	if err != nil {
		return models.CompanyLogo{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (r *CompanyLogoRepo) UpdateCompanyLogoFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.CompanyLogoRepo.UpdateCompanyLogoFields"

	if err := r.updateFields(ctx, "company_logos", id, updates, companyLogoUpdatable, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *CompanyLogoRepo) DeleteCompanyLogo(ctx context.Context, id uuid.UUID) error {
	const op = "repository.CompanyLogoRepo.DeleteCompanyLogo"

	if err := r.deleteByID(ctx, "company_logos", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *CompanyLogoRepo) ListCompanyLogos(ctx context.Context, filter models.CompanyFilter) ([]models.CompanyLogo, error) {
	const op = "repository.CompanyLogoRepo.ListCompanyLogos"

	qb := r.sb.Select(companyLogoColumns...).From("company_logos")
	if filter.OnHomepage != nil {
		qb = qb.Where(sq.Eq{"display_on_homepage": *filter.OnHomepage})
	}
	if filter.Query != "" {
		qb = qb.Where(search(filter.Query, "company_name"))
	}

	items, err := queryAll(ctx, r.db, qb.OrderBy("display_order ASC", "company_name ASC"), scanCompanyLogo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func scanCompanyLogo(row scanner) (models.CompanyLogo, error) {
	var c models.CompanyLogo
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.Logo, &c.WebsiteURL, &c.DisplayOnHomepage,
		&c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
