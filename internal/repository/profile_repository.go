package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/domain/models"
	"portfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var profileColumns = []string{
	"id", "name", "title", "bio", "profile_photo", "email", "phone",
	"linkedin_url", "instagram_url", "twitter_url", "resume", "created_at", "updated_at",
}

var profileUpdatable = map[string]bool{
	"name":          true,
	"title":         true,
	"bio":           true,
	"profile_photo": true,
	"email":         true,
	"phone":         true,
	"linkedin_url":  true,
	"instagram_url": true,
	"twitter_url":   true,
	"resume":        true,
}

type ProfileRepo struct {
	baseRepo
}

func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{baseRepo: newBaseRepo(db)}
}

// CreateProfile fails with storage.ErrSingletonViolation when a profile
// already exists.
func (r *ProfileRepo) CreateProfile(ctx context.Context, p models.Profile) (uuid.UUID, error) {
	const op = "repository.ProfileRepo.CreateProfile"

	id, err := r.insert(ctx, r.sb.Insert("profiles").
		Columns(
			"name", "title", "bio", "profile_photo", "email", "phone",
			"linkedin_url", "instagram_url", "twitter_url", "resume",
		).
		Values(
			p.Name, p.Title, p.Bio, p.ProfilePhoto, p.Email, p.Phone,
			p.LinkedinURL, p.InstagramURL, p.TwitterURL, p.Resume,
		))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ProfileRepo) GetProfile(ctx context.Context) (*models.Profile, error) {
	const op = "repository.ProfileRepo.GetProfile"

	p, err := queryOne(ctx, r.db, r.sb.Select(profileColumns...).From("profiles").Limit(1), scanProfile)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

func (r *ProfileRepo) UpdateProfileFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.ProfileRepo.UpdateProfileFields"

	if err := r.updateFields(ctx, "profiles", id, updates, profileUpdatable, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ProfileRepo) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	const op = "repository.ProfileRepo.DeleteProfile"

	if err := r.deleteByID(ctx, "profiles", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scanProfile(row scanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.Title, &p.Bio, &p.ProfilePhoto, &p.Email, &p.Phone,
		&p.LinkedinURL, &p.InstagramURL, &p.TwitterURL, &p.Resume, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

var academyColumns = []string{
	"id", "title", "subtitle", "hero_image", "description", "age_groups",
	"locations", "training_philosophy", "created_at", "updated_at",
}

var academyUpdatable = map[string]bool{
	"title":               true,
	"subtitle":            true,
	"hero_image":          true,
	"description":         true,
	"age_groups":          true,
	"locations":           true,
	"training_philosophy": true,
}

var galleryImageColumns = []string{"id", "academy_id", "image", "caption", "display_order", "created_at"}

var galleryImageUpdatable = map[string]bool{
	"image":         true,
	"caption":       true,
	"display_order": true,
}

// AcademyRepo stores the academy singleton and its gallery.
type AcademyRepo struct {
	baseRepo
}

func NewAcademyRepo(db *pgxpool.Pool) *AcademyRepo {
	return &AcademyRepo{baseRepo: newBaseRepo(db)}
}

func (r *AcademyRepo) CreateAcademy(ctx context.Context, a models.AcademyProfile) (uuid.UUID, error) {
	const op = "repository.AcademyRepo.CreateAcademy"

	id, err := r.insert(ctx, r.sb.Insert("academy_profiles").
		Columns("title", "subtitle", "hero_image", "description", "age_groups", "locations", "training_philosophy").
		Values(a.Title, a.Subtitle, a.HeroImage, a.Description, a.AgeGroups, a.Locations, a.TrainingPhilosophy))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// GetAcademy returns the academy with its gallery in display order.
func (r *AcademyRepo) GetAcademy(ctx context.Context) (*models.AcademyProfile, error) {
	const op = "repository.AcademyRepo.GetAcademy"

	a, err := queryOne(ctx, r.db, r.sb.Select(academyColumns...).From("academy_profiles").Limit(1), scanAcademy)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.Gallery, err = r.ListGalleryImages(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &a, nil
}

func (r *AcademyRepo) UpdateAcademyFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.AcademyRepo.UpdateAcademyFields"

	if err := r.updateFields(ctx, "academy_profiles", id, updates, academyUpdatable, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteAcademy removes the academy. Gallery rows go with it (ON DELETE CASCADE).
func (r *AcademyRepo) DeleteAcademy(ctx context.Context, id uuid.UUID) error {
	const op = "repository.AcademyRepo.DeleteAcademy"

	if err := r.deleteByID(ctx, "academy_profiles", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *AcademyRepo) AddGalleryImage(ctx context.Context, img models.GalleryImage) (uuid.UUID, error) {
	const op = "repository.AcademyRepo.AddGalleryImage"

	id, err := r.insert(ctx, r.sb.Insert("gallery_images").
		Columns("academy_id", "image", "caption", "display_order").
		Values(img.AcademyID, img.Image, img.Caption, img.DisplayOrder))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *AcademyRepo) GetGalleryImageByID(ctx context.Context, id uuid.UUID) (models.GalleryImage, error) {
	const op = "repository.AcademyRepo.GetGalleryImageByID"

	img, err := queryOne(ctx, r.db, r.sb.Select(galleryImageColumns...).
		From("gallery_images").
		Where(sq.Eq{"id": id}), scanGalleryImage)
	if err != nil {
		return models.GalleryImage{}, fmt.Errorf("%s: %w", op, err)
	}

	return img, nil
}

func (r *AcademyRepo) UpdateGalleryImageFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	const op = "repository.AcademyRepo.UpdateGalleryImageFields"

	if err := r.updateFields(ctx, "gallery_images", id, updates, galleryImageUpdatable, false); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *AcademyRepo) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	const op = "repository.AcademyRepo.DeleteGalleryImage"

	if err := r.deleteByID(ctx, "gallery_images", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *AcademyRepo) ListGalleryImages(ctx context.Context, academyID uuid.UUID) ([]models.GalleryImage, error) {
	const op = "repository.AcademyRepo.ListGalleryImages"

	images, err := queryAll(ctx, r.db, r.sb.Select(galleryImageColumns...).
		From("gallery_images").
		Where(sq.Eq{"academy_id": academyID}).
		OrderBy("display_order ASC", "created_at DESC"), scanGalleryImage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

func scanAcademy(row scanner) (models.AcademyProfile, error) {
	var a models.AcademyProfile
	err := row.Scan(
		&a.ID, &a.Title, &a.Subtitle, &a.HeroImage, &a.Description, &a.AgeGroups,
		&a.Locations, &a.TrainingPhilosophy, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func scanGalleryImage(row scanner) (models.GalleryImage, error) {
	var img models.GalleryImage
	err := row.Scan(&img.ID, &img.AcademyID, &img.Image, &img.Caption, &img.DisplayOrder, &img.CreatedAt)
	return img, err
}
