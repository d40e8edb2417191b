package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/storage"
	"portfolio/internal/transport/http/dto"

	"github.com/google/uuid"
)

func validateRating(rating int) error {
	if rating < models.MinRating || rating > models.MaxRating {
		return invalid("rating", fmt.Sprintf("must be between %d and %d", models.MinRating, models.MaxRating))
	}

	return nil
}

func validateQuote(quote string) error {
	if len([]rune(quote)) > models.MaxQuoteLength {
		return invalid("quote", fmt.Sprintf("must be at most %d characters", models.MaxQuoteLength))
	}

	return nil
}

func (s *ContentService) CreateTestimonial(ctx context.Context, req dto.TestimonialRequest) (*models.Testimonial, error) {
	const op = "content_service.CreateTestimonial"
	log := s.log.With(slog.String("op", op))

	// Omitted rating means the top score, as the column default does.
	if req.Rating == 0 {
		req.Rating = models.MaxRating
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := validateQuote(req.Quote); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repos.Testimonial.CreateTestimonial(ctx, models.Testimonial{
		Name:         req.Name,
		Role:         req.Role,
		Company:      req.Company,
		Quote:        req.Quote,
		Rating:       req.Rating,
		IsFeatured:   req.IsFeatured,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		log.Error("failed to create testimonial", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.changed()

	return s.GetTestimonial(ctx, id)
}

func (s *ContentService) GetTestimonial(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	const op = "content_service.GetTestimonial"

	t, err := s.repos.Testimonial.GetTestimonialByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &t, nil
}

func (s *ContentService) UpdateTestimonial(ctx context.Context, id uuid.UUID, req dto.UpdateTestimonialRequest) (*models.Testimonial, error) {
	const op = "content_service.UpdateTestimonial"

	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if req.Quote != nil {
		if err := validateQuote(*req.Quote); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	updates := make(map[string]interface{})
	setString(updates, "name", req.Name)
	setString(updates, "role", req.Role)
	setString(updates, "company", req.Company)
	setString(updates, "quote", req.Quote)
	setInt(updates, "rating", req.Rating)
	setBool(updates, "is_featured", req.IsFeatured)
	setInt(updates, "display_order", req.DisplayOrder)

	if err := s.repos.Testimonial.UpdateTestimonialFields(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	return s.GetTestimonial(ctx, id)
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	const op = "content_service.DeleteTestimonial"

	current, err := s.repos.Testimonial.GetTestimonialByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repos.Testimonial.DeleteTestimonial(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.release(ctx, current.Assets()...)
	s.changed()

	return nil
}

func (s *ContentService) ListTestimonials(ctx context.Context, filter models.TestimonialFilter) ([]models.Testimonial, error) {
	const op = "content_service.ListTestimonials"

	items, err := s.repos.Testimonial.ListTestimonials(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CreateProject derives the slug from the title when none is given.
func (s *ContentService) CreateProject(ctx context.Context, req dto.ProjectRequest) (*models.Project, error) {
	const op = "content_service.CreateProject"
	log := s.log.With(slog.String("op", op), slog.String("title", req.Title))

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = generateSlug(req.Title)
		log.Debug("generated slug", slog.String("slug", slug))
	}
	if err := validateSlug(slug); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repos.Project.CreateProject(ctx, models.Project{
		Title:        req.Title,
		Slug:         slug,
		Subtitle:     req.Subtitle,
		Problem:      req.Problem,
		Solution:     req.Solution,
		Impact:       req.Impact,
		Tags:         req.Tags,
		IsFeatured:   req.IsFeatured,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		log.Warn("failed to create project", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.changed()

	return s.GetProject(ctx, id)
}

func (s *ContentService) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	const op = "content_service.GetProject"

	p, err := s.repos.Project.GetProjectByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

func (s *ContentService) UpdateProject(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*models.Project, error) {
	const op = "content_service.UpdateProject"

	if req.Slug != nil {
		slug := strings.TrimSpace(*req.Slug)
		if err := validateSlug(slug); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		req.Slug = &slug
	}

	updates := make(map[string]interface{})
	setString(updates, "title", req.Title)
	setString(updates, "slug", req.Slug)
	setString(updates, "subtitle", req.Subtitle)
	setString(updates, "problem", req.Problem)
	setString(updates, "solution", req.Solution)
	setString(updates, "impact", req.Impact)
	setString(updates, "tags", req.Tags)
	setBool(updates, "is_featured", req.IsFeatured)
	setInt(updates, "display_order", req.DisplayOrder)

	if err := s.repos.Project.UpdateProjectFields(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	return s.GetProject(ctx, id)
}

// DeleteProject removes the project with its images and releases their files.
func (s *ContentService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	const op = "content_service.DeleteProject"

	current, err := s.repos.Project.GetProjectByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repos.Project.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.release(ctx, current.Assets()...)
	for _, img := range current.Images {
		s.release(ctx, img.Image)
	}
	s.changed()

	return nil
}

func (s *ContentService) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	const op = "content_service.ListProjects"

	items, err := s.repos.Project.ListProjects(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *ContentService) AddProjectImage(ctx context.Context, projectID uuid.UUID, up Upload, caption string, order int) (*models.ProjectImage, error) {
	const op = "content_service.AddProjectImage"
	log := s.log.With(slog.String("op", op), slog.String("project_id", projectID.String()))

	if _, err := s.repos.Project.GetProjectByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	path, err := s.store(ctx, up, projectGallerySubPath)
	if err != nil {
		log.Error("failed to save project image", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repos.Project.AddProjectImage(ctx, models.ProjectImage{
		ProjectID:    projectID,
		Image:        path,
		Caption:      caption,
		DisplayOrder: order,
	})
	if err != nil {
		s.release(ctx, path)
		log.Error("failed to add project image", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	img, err := s.repos.Project.GetProjectImageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &img, nil
}

func (s *ContentService) UpdateProjectImage(ctx context.Context, projectID, imageID uuid.UUID, req dto.ChildImageRequest) (*models.ProjectImage, error) {
	const op = "content_service.UpdateProjectImage"

	if _, err := s.projectImage(ctx, projectID, imageID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})
	setString(updates, "caption", req.Caption)
	setInt(updates, "display_order", req.DisplayOrder)

	if err := s.repos.Project.UpdateProjectImageFields(ctx, imageID, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	img, err := s.repos.Project.GetProjectImageByID(ctx, imageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &img, nil
}

func (s *ContentService) DeleteProjectImage(ctx context.Context, projectID, imageID uuid.UUID) error {
	const op = "content_service.DeleteProjectImage"

	img, err := s.projectImage(ctx, projectID, imageID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repos.Project.DeleteProjectImage(ctx, imageID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.release(ctx, img.Image)
	s.changed()

	return nil
}

// projectImage loads an image and checks it belongs to the project.
func (s *ContentService) projectImage(ctx context.Context, projectID, imageID uuid.UUID) (models.ProjectImage, error) {
	img, err := s.repos.Project.GetProjectImageByID(ctx, imageID)
	if err != nil {
		return models.ProjectImage{}, err
	}
	if img.ProjectID != projectID {
		return models.ProjectImage{}, fmt.Errorf("image %s does not belong to project %s: %w", imageID, projectID, storage.ErrNotFound)
	}

	return img, nil
}

func (s *ContentService) CreateActionPhoto(ctx context.Context, req dto.ActionPhotoRequest) (*models.ActionPhoto, error) {
	const op = "content_service.CreateActionPhoto"
	log := s.log.With(slog.String("op", op), slog.String("title", req.Title))

	category := models.PhotoCategory(req.Category)
	if category == "" {
		category = models.CategoryOther
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%s: %w", op, invalid("category", "is not a known photo category"))
	}

	id, err := s.repos.ActionPhoto.CreateActionPhoto(ctx, models.ActionPhoto{
		Title:              req.Title,
		Category:           category,
		Caption:            req.Caption,
		IsFeaturedHomepage: req.IsFeaturedHomepage,
		DisplayOrder:       req.DisplayOrder,
	})
	if err != nil {
		log.Error("failed to create action photo", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.changed()

	return s.GetActionPhoto(ctx, id)
}

func (s *ContentService) GetActionPhoto(ctx context.Context, id uuid.UUID) (*models.ActionPhoto, error) {
	const op = "content_service.GetActionPhoto"

	a, err := s.repos.ActionPhoto.GetActionPhotoByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &a, nil
}

func (s *ContentService) UpdateActionPhoto(ctx context.Context, id uuid.UUID, req dto.UpdateActionPhotoRequest) (*models.ActionPhoto, error) {
	const op = "content_service.UpdateActionPhoto"

	updates := make(map[string]interface{})
	setString(updates, "title", req.Title)
	setString(updates, "caption", req.Caption)
	setBool(updates, "is_featured_homepage", req.IsFeaturedHomepage)
	setInt(updates, "display_order", req.DisplayOrder)
	if req.Category != nil {
		if !models.PhotoCategory(*req.Category).Valid() {
			return nil, fmt.Errorf("%s: %w", op, invalid("category", "is not a known photo category"))
		}
		updates["category"] = *req.Category
	}

	if err := s.repos.ActionPhoto.UpdateActionPhotoFields(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	return s.GetActionPhoto(ctx, id)
}

func (s *ContentService) DeleteActionPhoto(ctx context.Context, id uuid.UUID) error {
	const op = "content_service.DeleteActionPhoto"

	current, err := s.repos.ActionPhoto.GetActionPhotoByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repos.ActionPhoto.DeleteActionPhoto(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.release(ctx, current.Assets()...)
	s.changed()

	return nil
}

func (s *ContentService) ListActionPhotos(ctx context.Context, filter models.ActionPhotoFilter) ([]models.ActionPhoto, error) {
	const op = "content_service.ListActionPhotos"

	items, err := s.repos.ActionPhoto.ListActionPhotos(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}
