package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/storage"
	"portfolio/internal/transport/http/dto"

	"github.com/google/uuid"
)

// GetProfile returns the profile, or nil when none has been created.
func (s *ContentService) GetProfile(ctx context.Context) (*models.Profile, error) {
	const op = "content_service.GetProfile"

	p, err := s.repos.Profile.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *ContentService) CreateProfile(ctx context.Context, req dto.ProfileRequest) (*models.Profile, error) {
	const op = "content_service.CreateProfile"
	log := s.log.With(slog.String("op", op))

	id, err := s.repos.Profile.CreateProfile(ctx, models.Profile{
		Name:         req.Name,
		Title:        req.Title,
		Bio:          req.Bio,
		Email:        req.Email,
		Phone:        req.Phone,
		LinkedinURL:  req.LinkedinURL,
		InstagramURL: req.InstagramURL,
		TwitterURL:   req.TwitterURL,
	})
	if err != nil {
		if errors.Is(err, storage.ErrSingletonViolation) {
			log.Warn("profile already exists")
		} else {
			log.Error("failed to create profile", sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("profile created", slog.String("id", id.String()))
	s.changed()

	return s.GetProfile(ctx)
}

func (s *ContentService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*models.Profile, error) {
	const op = "content_service.UpdateProfile"

	current, err := s.requireProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})
	setString(updates, "name", req.Name)
	setString(updates, "title", req.Title)
	setString(updates, "bio", req.Bio)
	setString(updates, "email", req.Email)
	setString(updates, "phone", req.Phone)
	setString(updates, "linkedin_url", req.LinkedinURL)
	setString(updates, "instagram_url", req.InstagramURL)
	setString(updates, "twitter_url", req.TwitterURL)

	if err := s.repos.Profile.UpdateProfileFields(ctx, current.ID, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	return s.GetProfile(ctx)
}

func (s *ContentService) DeleteProfile(ctx context.Context) error {
	const op = "content_service.DeleteProfile"

	current, err := s.requireProfile(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repos.Profile.DeleteProfile(ctx, current.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.release(ctx, current.Assets()...)
	s.changed()

	return nil
}

func (s *ContentService) requireProfile(ctx context.Context) (*models.Profile, error) {
	p, err := s.repos.Profile.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, storage.ErrNotFound
	}

	return p, nil
}

// GetAcademy returns the academy with its gallery, or nil when absent.
func (s *ContentService) GetAcademy(ctx context.Context) (*models.AcademyProfile, error) {
	const op = "content_service.GetAcademy"

	a, err := s.repos.Academy.GetAcademy(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (s *ContentService) CreateAcademy(ctx context.Context, req dto.AcademyRequest) (*models.AcademyProfile, error) {
	const op = "content_service.CreateAcademy"
	log := s.log.With(slog.String("op", op))

	id, err := s.repos.Academy.CreateAcademy(ctx, models.AcademyProfile{
		Title:              req.Title,
		Subtitle:           req.Subtitle,
		Description:        req.Description,
		AgeGroups:          req.AgeGroups,
		Locations:          req.Locations,
		TrainingPhilosophy: req.TrainingPhilosophy,
	})
	if err != nil {
		log.Warn("failed to create academy", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("academy created", slog.String("id", id.String()))
	s.changed()

	return s.GetAcademy(ctx)
}

func (s *ContentService) UpdateAcademy(ctx context.Context, req dto.UpdateAcademyRequest) (*models.AcademyProfile, error) {
	const op = "content_service.UpdateAcademy"

	current, err := s.requireAcademy(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updates := make(map[string]interface{})
	setString(updates, "title", req.Title)
	setString(updates, "subtitle", req.Subtitle)
	setString(updates, "description", req.Description)
	setString(updates, "age_groups", req.AgeGroups)
	setString(updates, "locations", req.Locations)
	setString(updates, "training_philosophy", req.TrainingPhilosophy)

	if err := s.repos.Academy.UpdateAcademyFields(ctx, current.ID, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	return s.GetAcademy(ctx)
}

// DeleteAcademy removes the academy and its gallery, releasing every image.
func (s *ContentService) DeleteAcademy(ctx context.Context) error {
	const op = "content_service.DeleteAcademy"

	current, err := s.requireAcademy(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repos.Academy.DeleteAcademy(ctx, current.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.release(ctx, current.Assets()...)
	for _, img := range current.Gallery {
		s.release(ctx, img.Image)
	}
	s.changed()

	return nil
}

func (s *ContentService) requireAcademy(ctx context.Context) (*models.AcademyProfile, error) {
	a, err := s.repos.Academy.GetAcademy(ctx)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, storage.ErrNotFound
	}

	return a, nil
}

func (s *ContentService) ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	const op = "content_service.ListGalleryImages"

	a, err := s.requireAcademy(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a.Gallery, nil
}

// AddGalleryImage stores the file and attaches it to the academy gallery.
// The file is released again when the row cannot be written.
func (s *ContentService) AddGalleryImage(ctx context.Context, up Upload, caption string, order int) (*models.GalleryImage, error) {
	const op = "content_service.AddGalleryImage"
	log := s.log.With(slog.String("op", op))

	a, err := s.requireAcademy(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	path, err := s.store(ctx, up, gallerySubPath)
	if err != nil {
		log.Error("failed to save gallery image", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repos.Academy.AddGalleryImage(ctx, models.GalleryImage{
		AcademyID:    a.ID,
		Image:        path,
		Caption:      caption,
		DisplayOrder: order,
	})
	if err != nil {
		s.release(ctx, path)
		log.Error("failed to add gallery image", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	img, err := s.repos.Academy.GetGalleryImageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &img, nil
}

func (s *ContentService) UpdateGalleryImage(ctx context.Context, id uuid.UUID, req dto.ChildImageRequest) (*models.GalleryImage, error) {
	const op = "content_service.UpdateGalleryImage"

	updates := make(map[string]interface{})
	setString(updates, "caption", req.Caption)
	setInt(updates, "display_order", req.DisplayOrder)

	if err := s.repos.Academy.UpdateGalleryImageFields(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.changed()

	img, err := s.repos.Academy.GetGalleryImageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &img, nil
}

func (s *ContentService) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	const op = "content_service.DeleteGalleryImage"

	img, err := s.repos.Academy.GetGalleryImageByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repos.Academy.DeleteGalleryImage(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.release(ctx, img.Image)
	s.changed()

	return nil
}

func setString(updates map[string]interface{}, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}

func setInt(updates map[string]interface{}, column string, v *int) {
	if v != nil {
		updates[column] = *v
	}
}

func setBool(updates map[string]interface{}, column string, v *bool) {
	if v != nil {
		updates[column] = *v
	}
}
