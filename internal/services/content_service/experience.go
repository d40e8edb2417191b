package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/transport/http/dto"

	"github.com/google/uuid"
)

// An entry marked current has no end date; a stored end date is dropped.
// An end date earlier than the start date is rejected.
func normalizeTenure(start time.Time, end *time.Time, isCurrent bool) (*time.Time, error) {
	if isCurrent {
		return nil, nil
	}
	if end != nil && end.Before(start) {
		return nil, invalid("end_date", "must not be before start_date")
	}

	return end, nil
}

func (s *ContentService) CreateExperience(ctx context.Context, req dto.ExperienceRequest) (*models.Experience, error) {
	const op = "content_service.CreateExperience"
	log := s.log.With(slog.String("op", op), slog.String("company", req.Company))

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var end *time.Time
	if req.EndDate != "" {
		t, err := parseDate("end_date", req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		end = &t
	}

	end, err = normalizeTenure(start, end, req.IsCurrent)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repos.Experience.CreateExperience(ctx, models.Experience{
		Company:      req.Company,
		Role:         req.Role,
		StartDate:    start,
		EndDate:      end,
		Description:  req.Description,
		IsCurrent:    req.IsCurrent,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		log.Warn("failed to create experience", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("experience created", slog.String("id", id.String()))
	s.changed()

	return s.GetExperience(ctx, id)
}

func (s *ContentService) GetExperience(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	const op = "content_service.GetExperience"

	e, err := s.repos.Experience.GetExperienceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &e, nil
}

func (s *ContentService) UpdateExperience(ctx context.Context, id uuid.UUID, req dto.UpdateExperienceRequest) (*models.Experience, error) {
	const op = "content_service.UpdateExperience"

	current, err := s.repos.Experience.GetExperienceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})
	setString(updates, "company", req.Company)
	setString(updates, "role", req.Role)
	setString(updates, "description", req.Description)
	setInt(updates, "display_order", req.DisplayOrder)
	setBool(updates, "is_current", req.IsCurrent)

	start, end, isCurrent := current.StartDate, current.EndDate, current.IsCurrent
	if req.StartDate != nil {
		if start, err = parseDate("start_date", *req.StartDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		updates["start_date"] = start
	}
	if req.EndDate != nil {
		end = nil
		if *req.EndDate != "" {
			t, err := parseDate("end_date", *req.EndDate)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			end = &t
		}
	}
	if req.IsCurrent != nil {
		isCurrent = *req.IsCurrent
	}

	normalized, err := normalizeTenure(start, end, isCurrent)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if req.EndDate != nil || (current.EndDate != nil && normalized == nil) {
		if normalized == nil {
			updates["end_date"] = nil
		} else {
			updates["end_date"] = *normalized
		}
	}

	if err := s.repos.Experience.UpdateExperienceFields(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	return s.GetExperience(ctx, id)
}

func (s *ContentService) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	const op = "content_service.DeleteExperience"

	current, err := s.repos.Experience.GetExperienceByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repos.Experience.DeleteExperience(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.release(ctx, current.Assets()...)
	s.changed()

	return nil
}

func (s *ContentService) ListExperiences(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error) {
	const op = "content_service.ListExperiences"

	items, err := s.repos.Experience.ListExperiences(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *ContentService) CreateCertification(ctx context.Context, req dto.CertificationRequest) (*models.Certification, error) {
	const op = "content_service.CreateCertification"
	log := s.log.With(slog.String("op", op), slog.String("name", req.Name))

	issued, err := parseDate("issue_date", req.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repos.Certificate.CreateCertification(ctx, models.Certification{
		Name:                req.Name,
		IssuingOrganization: req.IssuingOrganization,
		IssueDate:           issued,
		CredentialID:        req.CredentialID,
		DisplayOrder:        req.DisplayOrder,
	})
	if err != nil {
		log.Warn("failed to create certification", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.changed()

	return s.GetCertification(ctx, id)
}

func (s *ContentService) GetCertification(ctx context.Context, id uuid.UUID) (*models.Certification, error) {
	const op = "content_service.GetCertification"

	c, err := s.repos.Certificate.GetCertificationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

func (s *ContentService) UpdateCertification(ctx context.Context, id uuid.UUID, req dto.UpdateCertificationRequest) (*models.Certification, error) {
	const op = "content_service.UpdateCertification"

	updates := make(map[string]interface{})
	setString(updates, "name", req.Name)
	setString(updates, "issuing_organization", req.IssuingOrganization)
	setString(updates, "credential_id", req.CredentialID)
	setInt(updates, "display_order", req.DisplayOrder)
	if req.IssueDate != nil {
		issued, err := parseDate("issue_date", *req.IssueDate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		updates["issue_date"] = issued
	}

	if err := s.repos.Certificate.UpdateCertificationFields(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	return s.GetCertification(ctx, id)
}

func (s *ContentService) DeleteCertification(ctx context.Context, id uuid.UUID) error {
	const op = "content_service.DeleteCertification"

	current, err := s.repos.Certificate.GetCertificationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repos.Certificate.DeleteCertification(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.release(ctx, current.Assets()...)
	s.changed()

	return nil
}

func (s *ContentService) ListCertifications(ctx context.Context, filter models.CertificationFilter) ([]models.Certification, error) {
	const op = "content_service.ListCertifications"

	items, err := s.repos.Certificate.ListCertifications(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *ContentService) CreateCompanyLogo(ctx context.Context, req dto.CompanyLogoRequest) (*models.CompanyLogo, error) {
	const op = "content_service.CreateCompanyLogo"
	log := s.log.With(slog.String("op", op), slog.String("company", req.CompanyName))

	onHomepage := true
	if req.DisplayOnHomepage != nil {
		onHomepage = *req.DisplayOnHomepage
	}

	id, err := s.repos.Company.CreateCompanyLogo(ctx, models.CompanyLogo{
		CompanyName:       req.CompanyName,
		WebsiteURL:        req.WebsiteURL,
		DisplayOnHomepage: onHomepage,
		DisplayOrder:      req.DisplayOrder,
	})
	if err != nil {
		log.Warn("failed to create company logo", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.changed()

	return s.GetCompanyLogo(ctx, id)
}

func (s *ContentService) GetCompanyLogo(ctx context.Context, id uuid.UUID) (*models.CompanyLogo, error) {
	const op = "content_service.GetCompanyLogo"

	c, err := s.repos.Company.GetCompanyLogoByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}

func (s *ContentService) UpdateCompanyLogo(ctx context.Context, id uuid.UUID, req dto.UpdateCompanyLogoRequest) (*models.CompanyLogo, error) {
	const op = "content_service.UpdateCompanyLogo"

	updates := make(map[string]interface{})
	setString(updates, "company_name", req.CompanyName)
	setString(updates, "website_url", req.WebsiteURL)
	setBool(updates, "display_on_homepage", req.DisplayOnHomepage)
	setInt(updates, "display_order", req.DisplayOrder)

	if err := s.repos.Company.UpdateCompanyLogoFields(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	return s.GetCompanyLogo(ctx, id)
}

func (s *ContentService) DeleteCompanyLogo(ctx context.Context, id uuid.UUID) error {
	const op = "content_service.DeleteCompanyLogo"

	current, err := s.repos.Company.GetCompanyLogoByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repos.Company.DeleteCompanyLogo(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.release(ctx, current.Assets()...)
	s.changed()

	return nil
}

func (s *ContentService) ListCompanyLogos(ctx context.Context, filter models.CompanyFilter) ([]models.CompanyLogo, error) {
	const op = "content_service.ListCompanyLogos"

	items, err := s.repos.Company.ListCompanyLogos(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}
