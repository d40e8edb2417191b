package repository

import (
	"context"
	"time"

	"portfolio/internal/domain/models"

	"github.com/google/uuid"
)

// Singleton getters return (nil, nil) when no record exists.

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.Profile) (uuid.UUID, error)
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfileFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}

type AcademyRepository interface {
	CreateAcademy(ctx context.Context, academy models.AcademyProfile) (uuid.UUID, error)
	GetAcademy(ctx context.Context) (*models.AcademyProfile, error)
	UpdateAcademyFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteAcademy(ctx context.Context, id uuid.UUID) error

	AddGalleryImage(ctx context.Context, image models.GalleryImage) (uuid.UUID, error)
	GetGalleryImageByID(ctx context.Context, id uuid.UUID) (models.GalleryImage, error)
	UpdateGalleryImageFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteGalleryImage(ctx context.Context, id uuid.UUID) error
	ListGalleryImages(ctx context.Context, academyID uuid.UUID) ([]models.GalleryImage, error)
}

type ExperienceRepository interface {
	CreateExperience(ctx context.Context, exp models.Experience) (uuid.UUID, error)
	GetExperienceByID(ctx context.Context, id uuid.UUID) (models.Experience, error)
	UpdateExperienceFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteExperience(ctx context.Context, id uuid.UUID) error
	ListExperiences(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error)
}

type CertificationRepository interface {
	CreateCertification(ctx context.Context, cert models.Certification) (uuid.UUID, error)
	GetCertificationByID(ctx context.Context, id uuid.UUID) (models.Certification, error)
	UpdateCertificationFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteCertification(ctx context.Context, id uuid.UUID) error
	ListCertifications(ctx context.Context, filter models.CertificationFilter) ([]models.Certification, error)
}

type CompanyLogoRepository interface {
	CreateCompanyLogo(ctx context.Context, logo models.CompanyLogo) (uuid.UUID, error)
	GetCompanyLogoByID(ctx context.Context, id uuid.UUID) (models.CompanyLogo, error)
	UpdateCompanyLogoFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteCompanyLogo(ctx context.Context, id uuid.UUID) error
	ListCompanyLogos(ctx context.Context, filter models.CompanyFilter) ([]models.CompanyLogo, error)
}

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, sub models.ContactSubmission) (uuid.UUID, error)
	GetSubmissionByID(ctx context.Context, id uuid.UUID) (models.ContactSubmission, error)
	UpdateSubmissionFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
	ListSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.ContactSubmission, error)
}

type TestimonialRepository interface {
	CreateTestimonial(ctx context.Context, t models.Testimonial) (uuid.UUID, error)
	GetTestimonialByID(ctx context.Context, id uuid.UUID) (models.Testimonial, error)
	UpdateTestimonialFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
	ListTestimonials(ctx context.Context, filter models.TestimonialFilter) ([]models.Testimonial, error)
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, p models.Project) (uuid.UUID, error)
	GetProjectByID(ctx context.Context, id uuid.UUID) (models.Project, error)
	UpdateProjectFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)

	AddProjectImage(ctx context.Context, image models.ProjectImage) (uuid.UUID, error)
	GetProjectImageByID(ctx context.Context, id uuid.UUID) (models.ProjectImage, error)
	UpdateProjectImageFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteProjectImage(ctx context.Context, id uuid.UUID) error
	ListProjectImages(ctx context.Context, projectID uuid.UUID) ([]models.ProjectImage, error)
}

type ActionPhotoRepository interface {
	CreateActionPhoto(ctx context.Context, photo models.ActionPhoto) (uuid.UUID, error)
	GetActionPhotoByID(ctx context.Context, id uuid.UUID) (models.ActionPhoto, error)
	UpdateActionPhotoFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteActionPhoto(ctx context.Context, id uuid.UUID) error
	ListActionPhotos(ctx context.Context, filter models.ActionPhotoFilter) ([]models.ActionPhoto, error)
}

// RateLimiter counts hits per key inside a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
