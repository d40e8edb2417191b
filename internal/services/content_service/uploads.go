package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"

	"github.com/google/uuid"
)

var ErrUnknownAsset = errors.New("unknown asset field")

const (
	gallerySubPath        = "academy/gallery"
	projectGallerySubPath = "projects/gallery"
)

// Upload is a file to store: a multipart header from the admin API, or a
// reader from the seeding tools.
type Upload struct {
	Header   *multipart.FileHeader
	Reader   io.Reader
	Filename string
}

func (s *ContentService) store(ctx context.Context, up Upload, subPath string) (string, error) {
	if up.Header != nil {
		path, _, err := s.files.Save(ctx, up.Header, subPath)
		return path, err
	}
	if up.Reader == nil {
		return "", fmt.Errorf("empty upload: %w", ErrUnknownAsset)
	}

	path, _, err := s.files.SaveReader(ctx, up.Reader, up.Filename, subPath)
	return path, err
}

type assetTarget struct {
	column  string
	subPath string
	// current resolves the record id (singletons ignore the argument) and the
	// file it references now.
	current func(ctx context.Context, s *ContentService, id uuid.UUID) (uuid.UUID, string, error)
	update  func(ctx context.Context, s *ContentService, id uuid.UUID, updates map[string]interface{}) error
}

// assetTargets maps entity -> field -> target. Entity names match the admin
// route segments.
var assetTargets = map[string]map[string]assetTarget{
	"profile": {
		"profile_photo": profileTarget("profile_photo", "profile", func(p *models.Profile) string { return p.ProfilePhoto }),
		"resume":        profileTarget("resume", "resume", func(p *models.Profile) string { return p.Resume }),
	},
	"academy": {
		"hero_image": {
			column:  "hero_image",
			subPath: "academy",
			current: func(ctx context.Context, s *ContentService, _ uuid.UUID) (uuid.UUID, string, error) {
				a, err := s.requireAcademy(ctx)
				if err != nil {
					return uuid.Nil, "", err
				}
				return a.ID, a.HeroImage, nil
			},
			update: func(ctx context.Context, s *ContentService, id uuid.UUID, u map[string]interface{}) error {
				return s.repos.Academy.UpdateAcademyFields(ctx, id, u)
			},
		},
	},
	"gallery": {
		"image": {
			column:  "image",
			subPath: gallerySubPath,
			current: func(ctx context.Context, s *ContentService, id uuid.UUID) (uuid.UUID, string, error) {
				img, err := s.repos.Academy.GetGalleryImageByID(ctx, id)
				return img.ID, img.Image, err
			},
			update: func(ctx context.Context, s *ContentService, id uuid.UUID, u map[string]interface{}) error {
				return s.repos.Academy.UpdateGalleryImageFields(ctx, id, u)
			},
		},
	},
	"experiences": {
		"company_logo": {
			column:  "company_logo",
			subPath: "experiences",
			current: func(ctx context.Context, s *ContentService, id uuid.UUID) (uuid.UUID, string, error) {
				e, err := s.repos.Experience.GetExperienceByID(ctx, id)
				return e.ID, e.CompanyLogo, err
			},
			update: func(ctx context.Context, s *ContentService, id uuid.UUID, u map[string]interface{}) error {
				return s.repos.Experience.UpdateExperienceFields(ctx, id, u)
			},
		},
	},
	"certifications": {
		"certificate_image": {
			column:  "certificate_image",
			subPath: "certifications",
			current: func(ctx context.Context, s *ContentService, id uuid.UUID) (uuid.UUID, string, error) {
				c, err := s.repos.Certificate.GetCertificationByID(ctx, id)
				return c.ID, c.CertificateImage, err
			},
			update: func(ctx context.Context, s *ContentService, id uuid.UUID, u map[string]interface{}) error {
				return s.repos.Certificate.UpdateCertificationFields(ctx, id, u)
			},
		},
	},
	"companies": {
		"logo": {
			column:  "logo",
			subPath: "company_logos",
			current: func(ctx context.Context, s *ContentService, id uuid.UUID) (uuid.UUID, string, error) {
				c, err := s.repos.Company.GetCompanyLogoByID(ctx, id)
				return c.ID, c.Logo, err
			},
			update: func(ctx context.Context, s *ContentService, id uuid.UUID, u map[string]interface{}) error {
				return s.repos.Company.UpdateCompanyLogoFields(ctx, id, u)
			},
		},
	},
	"testimonials": {
		"photo": {
			column:  "photo",
			subPath: "testimonials",
			current: func(ctx context.Context, s *ContentService, id uuid.UUID) (uuid.UUID, string, error) {
				t, err := s.repos.Testimonial.GetTestimonialByID(ctx, id)
				return t.ID, t.Photo, err
			},
			update: func(ctx context.Context, s *ContentService, id uuid.UUID, u map[string]interface{}) error {
				return s.repos.Testimonial.UpdateTestimonialFields(ctx, id, u)
			},
		},
	},
	"projects": {
		"hero_image": {
			column:  "hero_image",
			subPath: "projects",
			current: func(ctx context.Context, s *ContentService, id uuid.UUID) (uuid.UUID, string, error) {
				p, err := s.repos.Project.GetProjectByID(ctx, id)
				return p.ID, p.HeroImage, err
			},
			update: func(ctx context.Context, s *ContentService, id uuid.UUID, u map[string]interface{}) error {
				return s.repos.Project.UpdateProjectFields(ctx, id, u)
			},
		},
	},
	"project_images": {
		"image": {
			column:  "image",
			subPath: projectGallerySubPath,
			current: func(ctx context.Context, s *ContentService, id uuid.UUID) (uuid.UUID, string, error) {
				img, err := s.repos.Project.GetProjectImageByID(ctx, id)
				return img.ID, img.Image, err
			},
			update: func(ctx context.Context, s *ContentService, id uuid.UUID, u map[string]interface{}) error {
				return s.repos.Project.UpdateProjectImageFields(ctx, id, u)
			},
		},
	},
	"action-photos": {
		"image": {
			column:  "image",
			subPath: "action_photos",
			current: func(ctx context.Context, s *ContentService, id uuid.UUID) (uuid.UUID, string, error) {
				a, err := s.repos.ActionPhoto.GetActionPhotoByID(ctx, id)
				return a.ID, a.Image, err
			},
			update: func(ctx context.Context, s *ContentService, id uuid.UUID, u map[string]interface{}) error {
				return s.repos.ActionPhoto.UpdateActionPhotoFields(ctx, id, u)
			},
		},
	},
}

func profileTarget(column, subPath string, pick func(*models.Profile) string) assetTarget {
	return assetTarget{
		column:  column,
		subPath: subPath,
		current: func(ctx context.Context, s *ContentService, _ uuid.UUID) (uuid.UUID, string, error) {
			p, err := s.requireProfile(ctx)
			if err != nil {
				return uuid.Nil, "", err
			}
			return p.ID, pick(p), nil
		},
		update: func(ctx context.Context, s *ContentService, id uuid.UUID, u map[string]interface{}) error {
			return s.repos.Profile.UpdateProfileFields(ctx, id, u)
		},
	}
}

// HasAssetField reports whether entity/field accepts uploads.
func HasAssetField(entity, field string) bool {
	_, ok := assetTargets[entity][field]
	return ok
}

// UploadAsset stores a new file for entity/field on record id and returns its
// stored path. The previously referenced file is released once the record
// points at the new one. For singletons id is ignored.
func (s *ContentService) UploadAsset(ctx context.Context, entity string, id uuid.UUID, field string, up Upload) (string, error) {
	const op = "content_service.UploadAsset"
	log := s.log.With(
		slog.String("op", op),
		slog.String("entity", entity),
		slog.String("field", field),
	)

	target, ok := assetTargets[entity][field]
	if !ok {
		return "", fmt.Errorf("%s: %s.%s: %w", op, entity, field, ErrUnknownAsset)
	}

	recordID, old, err := target.current(ctx, s, id)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	path, err := s.store(ctx, up, target.subPath)
	if err != nil {
		log.Error("failed to store file", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := target.update(ctx, s, recordID, map[string]interface{}{target.column: path}); err != nil {
		s.release(ctx, path)
		log.Error("failed to attach file", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if old != "" && old != path {
		s.release(ctx, old)
	}
	s.changed()

	log.Info("asset attached", slog.String("path", path))

	return path, nil
}
