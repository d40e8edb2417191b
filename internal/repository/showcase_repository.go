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

var testimonialColumns = []string{
	"id", "name", "role", "company", "photo", "quote", "rating",
	"is_featured", "display_order", "created_at", "updated_at",
}

var testimonialUpdatable = map[string]bool{
	"name":          true,
	"role":          true,
	"company":       true,
	"photo":         true,
	"quote":         true,
	"rating":        true,
	"is_featured":   true,
	"display_order": true,
}

type TestimonialRepo struct {
	baseRepo
}

func NewTestimonialRepo(db *pgxpool.Pool) *TestimonialRepo {
	return &TestimonialRepo{baseRepo: newBaseRepo(db)}
}

func (r *TestimonialRepo) CreateTestimonial(ctx context.Context, t models.Testimonial) (uuid.UUID, error) {
	const op = "repository.TestimonialRepo.CreateTestimonial"

	id, err := r.insert(ctx, r.sb.Insert("testimonials").
		Columns("name", "role", "company", "photo", "quote", "rating", "is_featured", "display_order").
		Values(t.Name, t.Role, t.Company, t.Photo, t.Quote, t.Rating, t.IsFeatured, t.DisplayOrder))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *TestimonialRepo) GetTestimonialByID(ctx context.Context, id uuid.UUID) (models.Testimonial, error) {
	const op = "repository.TestimonialRepo.GetTestimonialByID"

	t, err := queryOne(ctx, r.db, r.sb.Select(testimonialColumns...).
		From("testimonials").
		Where(sq.Eq{"id": id}), scanTestimonial)
	if err != nil {
		return models.Testimonial{}, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

func (r *TestimonialRepo) UpdateTestimonialFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.TestimonialRepo.UpdateTestimonialFields"

	if err := r.updateFields(ctx, "testimonials", id, updates, testimonialUpdatable, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *TestimonialRepo) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	const op = "repository.TestimonialRepo.DeleteTestimonial"

	if err := r.deleteByID(ctx, "testimonials", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *TestimonialRepo) ListTestimonials(ctx context.Context, filter models.TestimonialFilter) ([]models.Testimonial, error) {
	const op = "repository.TestimonialRepo.ListTestimonials"

	qb := r.sb.Select(testimonialColumns...).From("testimonials")
	if filter.Featured != nil {
		qb = qb.Where(sq.Eq{"is_featured": *filter.Featured})
	}

	items, err := queryAll(ctx, r.db, qb.OrderBy("display_order ASC", "created_at DESC"), scanTestimonial)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func scanTestimonial(row scanner) (models.Testimonial, error) {
	var t models.Testimonial
	err := row.Scan(
		&t.ID, &t.Name, &t.Role, &t.Company, &t.Photo, &t.Quote, &t.Rating,
		&t.IsFeatured, &t.DisplayOrder, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

var projectColumns = []string{
	"id", "title", "slug", "subtitle", "problem", "solution", "impact",
	"hero_image", "tags", "is_featured", "display_order", "created_at", "updated_at",
}

var projectUpdatable = map[string]bool{
	"title":         true,
	"slug":          true,
	"subtitle":      true,
	"problem":       true,
	"solution":      true,
	"impact":        true,
	"hero_image":    true,
	"tags":          true,
	"is_featured":   true,
	"display_order": true,
}

var projectImageColumns = []string{"id", "project_id", "image", "caption", "display_order", "created_at"}

var projectImageUpdatable = map[string]bool{
	"image":         true,
	"caption":       true,
	"display_order": true,
}

// ProjectRepo stores case studies and their images.
type ProjectRepo struct {
	baseRepo
}

func NewProjectRepo(db *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{baseRepo: newBaseRepo(db)}
}

// CreateProject fails with storage.ErrUniqueViolation on a duplicate slug.
func (r *ProjectRepo) CreateProject(ctx context.Context, p models.Project) (uuid.UUID, error) {
	const op = "repository.ProjectRepo.CreateProject"

	id, err := r.insert(ctx, r.sb.Insert("projects").
		Columns(
			"title", "slug", "subtitle", "problem", "solution", "impact",
			"hero_image", "tags", "is_featured", "display_order",
		).
		Values(
			p.Title, p.Slug, p.Subtitle, p.Problem, p.Solution, p.Impact,
			p.HeroImage, p.Tags, p.IsFeatured, p.DisplayOrder,
		))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// GetProjectByID returns the project with its images.
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id uuid.UUID) (models.Project, error) {
	const op = "repository.ProjectRepo.GetProjectByID"

	p, err := queryOne(ctx, r.db, r.sb.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"id": id}), scanProject)
	if err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}

	p.Images, err = r.ListProjectImages(ctx, p.ID)
	if err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (r *ProjectRepo) UpdateProjectFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.ProjectRepo.UpdateProjectFields"

	if err := r.updateFields(ctx, "projects", id, updates, projectUpdatable, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteProject removes the project and, by cascade, its images.
func (r *ProjectRepo) DeleteProject(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ProjectRepo.DeleteProject"

	if err := r.deleteByID(ctx, "projects", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListProjects filters by featured flag and by a single tag. Tag matching is
// case-insensitive against the comma-delimited tags column.
func (r *ProjectRepo) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	const op = "repository.ProjectRepo.ListProjects"

	qb := r.sb.Select(projectColumns...).From("projects")
	if filter.Featured != nil {
		qb = qb.Where(sq.Eq{"is_featured": *filter.Featured})
	}
	if filter.Tag != "" {
		qb = qb.Where(
			`lower(?) = ANY(string_to_array(lower(regexp_replace(btrim(tags), '\s*,\s*', ',', 'g')), ','))`,
			filter.Tag,
		)
	}

	items, err := queryAll(ctx, r.db, qb.OrderBy("display_order ASC", "created_at DESC"), scanProject)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (r *ProjectRepo) AddProjectImage(ctx context.Context, img models.ProjectImage) (uuid.UUID, error) {
	const op = "repository.ProjectRepo.AddProjectImage"

	id, err := r.insert(ctx, r.sb.Insert("project_images").
		Columns("project_id", "image", "caption", "display_order").
		Values(img.ProjectID, img.Image, img.Caption, img.DisplayOrder))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ProjectRepo) GetProjectImageByID(ctx context.Context, id uuid.UUID) (models.ProjectImage, error) {
	const op = "repository.ProjectRepo.GetProjectImageByID"

	img, err := queryOne(ctx, r.db, r.sb.Select(projectImageColumns...).
		From("project_images").
		Where(sq.Eq{"id": id}), scanProjectImage)
	if err != nil {
		return models.ProjectImage{}, fmt.Errorf("%s: %w", op, err)
	}

	return img, nil
}

func (r *ProjectRepo) UpdateProjectImageFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.ProjectRepo.UpdateProjectImageFields"

	if err := r.updateFields(ctx, "project_images", id, updates, projectImageUpdatable, false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ProjectRepo) DeleteProjectImage(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ProjectRepo.DeleteProjectImage"

	if err := r.deleteByID(ctx, "project_images", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ProjectRepo) ListProjectImages(ctx context.Context, projectID uuid.UUID) ([]models.ProjectImage, error) {
	const op = "repository.ProjectRepo.ListProjectImages"

	images, err := queryAll(ctx, r.db, r.sb.Select(projectImageColumns...).
		From("project_images").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("display_order ASC", "created_at DESC"), scanProjectImage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

func scanProject(row scanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Subtitle, &p.Problem, &p.Solution, &p.Impact,
		&p.HeroImage, &p.Tags, &p.IsFeatured, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func scanProjectImage(row scanner) (models.ProjectImage, error) {
	var img models.ProjectImage
	err := row.Scan(&img.ID, &img.ProjectID, &img.Image, &img.Caption, &img.DisplayOrder, &img.CreatedAt)
	return img, err
}

var actionPhotoColumns = []string{
	"id", "title", "image", "category", "caption", "is_featured_homepage",
	"display_order", "created_at", "updated_at",
}

var actionPhotoUpdatable = map[string]bool{
	"title":                true,
	"image":                true,
	"category":             true,
	"caption":              true,
	"is_featured_homepage": true,
	"display_order":        true,
}

type ActionPhotoRepo struct {
	baseRepo
}

func NewActionPhotoRepo(db *pgxpool.Pool) *ActionPhotoRepo {
	return &ActionPhotoRepo{baseRepo: newBaseRepo(db)}
}

func (r *ActionPhotoRepo) CreateActionPhoto(ctx context.Context, a models.ActionPhoto) (uuid.UUID, error) {
	const op = "repository.ActionPhotoRepo.CreateActionPhoto"

	id, err := r.insert(ctx, r.sb.Insert("action_photos").
		Columns("title", "image", "category", "caption", "is_featured_homepage", "display_order").
		Values(a.Title, a.Image, string(a.Category), a.Caption, a.IsFeaturedHomepage, a.DisplayOrder))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ActionPhotoRepo) GetActionPhotoByID(ctx context.Context, id uuid.UUID) (models.ActionPhoto, error) {
	const op = "repository.ActionPhotoRepo.GetActionPhotoByID"

	a, err := queryOne(ctx, r.db, r.sb.Select(actionPhotoColumns...).
		From("action_photos").
		Where(sq.Eq{"id": id}), scanActionPhoto)
	if err != nil {
		return models.ActionPhoto{}, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (r *ActionPhotoRepo) UpdateActionPhotoFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.ActionPhotoRepo.UpdateActionPhotoFields"

	if err := r.updateFields(ctx, "action_photos", id, updates, actionPhotoUpdatable, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ActionPhotoRepo) DeleteActionPhoto(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ActionPhotoRepo.DeleteActionPhoto"

	if err := r.deleteByID(ctx, "action_photos", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ActionPhotoRepo) ListActionPhotos(ctx context.Context, filter models.ActionPhotoFilter) ([]models.ActionPhoto, error) {
	const op = "repository.ActionPhotoRepo.ListActionPhotos"

	qb := r.sb.Select(actionPhotoColumns...).From("action_photos")
	if len(filter.Categories) > 0 {
		qb = qb.Where("category = ANY(?)", pq.Array(filter.Categories))
	}
	if filter.Featured != nil {
		qb = qb.Where(sq.Eq{"is_featured_homepage": *filter.Featured})
	}

	items, err := queryAll(ctx, r.db, qb.OrderBy("display_order ASC", "created_at DESC"), scanActionPhoto)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func scanActionPhoto(row scanner) (models.ActionPhoto, error) {
	var (
		a        models.ActionPhoto
		category string
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Image, &category, &a.Caption, &a.IsFeaturedHomepage,
		&a.DisplayOrder, &a.CreatedAt, &a.UpdatedAt,
	)
	a.Category = models.PhotoCategory(category)
	return a, err
}
