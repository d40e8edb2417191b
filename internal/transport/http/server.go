package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	services "portfolio/internal/services/content_service"
	"portfolio/internal/services/homepage"
	"portfolio/internal/services/submission"
	"portfolio/internal/storage"
	"portfolio/internal/transport/http/dto"
	"portfolio/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	CreateProfile(ctx context.Context, req dto.ProfileRequest) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*models.Profile, error)
	DeleteProfile(ctx context.Context) error
}

type AcademyService interface {
	GetAcademy(ctx context.Context) (*models.AcademyProfile, error)
	CreateAcademy(ctx context.Context, req dto.AcademyRequest) (*models.AcademyProfile, error)
	UpdateAcademy(ctx context.Context, req dto.UpdateAcademyRequest) (*models.AcademyProfile, error)
	DeleteAcademy(ctx context.Context) error
	ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error)
	AddGalleryImage(ctx context.Context, up services.Upload, caption string, order int) (*models.GalleryImage, error)
	UpdateGalleryImage(ctx context.Context, id uuid.UUID, req dto.ChildImageRequest) (*models.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id uuid.UUID) error
}

type ExperienceService interface {
	CreateExperience(ctx context.Context, req dto.ExperienceRequest) (*models.Experience, error)
	GetExperience(ctx context.Context, id uuid.UUID) (*models.Experience, error)
	UpdateExperience(ctx context.Context, id uuid.UUID, req dto.UpdateExperienceRequest) (*models.Experience, error)
	DeleteExperience(ctx context.Context, id uuid.UUID) error
	ListExperiences(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error)

	CreateCertification(ctx context.Context, req dto.CertificationRequest) (*models.Certification, error)
	GetCertification(ctx context.Context, id uuid.UUID) (*models.Certification, error)
	UpdateCertification(ctx context.Context, id uuid.UUID, req dto.UpdateCertificationRequest) (*models.Certification, error)
	DeleteCertification(ctx context.Context, id uuid.UUID) error
	ListCertifications(ctx context.Context, filter models.CertificationFilter) ([]models.Certification, error)

	CreateCompanyLogo(ctx context.Context, req dto.CompanyLogoRequest) (*models.CompanyLogo, error)
	GetCompanyLogo(ctx context.Context, id uuid.UUID) (*models.CompanyLogo, error)
	UpdateCompanyLogo(ctx context.Context, id uuid.UUID, req dto.UpdateCompanyLogoRequest) (*models.CompanyLogo, error)
	DeleteCompanyLogo(ctx context.Context, id uuid.UUID) error
	ListCompanyLogos(ctx context.Context, filter models.CompanyFilter) ([]models.CompanyLogo, error)
}

type ShowcaseService interface {
	CreateTestimonial(ctx context.Context, req dto.TestimonialRequest) (*models.Testimonial, error)
	GetTestimonial(ctx context.Context, id uuid.UUID) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uuid.UUID, req dto.UpdateTestimonialRequest) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
	ListTestimonials(ctx context.Context, filter models.TestimonialFilter) ([]models.Testimonial, error)

	CreateProject(ctx context.Context, req dto.ProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	AddProjectImage(ctx context.Context, projectID uuid.UUID, up services.Upload, caption string, order int) (*models.ProjectImage, error)
	UpdateProjectImage(ctx context.Context, projectID, imageID uuid.UUID, req dto.ChildImageRequest) (*models.ProjectImage, error)
	DeleteProjectImage(ctx context.Context, projectID, imageID uuid.UUID) error

	CreateActionPhoto(ctx context.Context, req dto.ActionPhotoRequest) (*models.ActionPhoto, error)
	GetActionPhoto(ctx context.Context, id uuid.UUID) (*models.ActionPhoto, error)
	UpdateActionPhoto(ctx context.Context, id uuid.UUID, req dto.UpdateActionPhotoRequest) (*models.ActionPhoto, error)
	DeleteActionPhoto(ctx context.Context, id uuid.UUID) error
	ListActionPhotos(ctx context.Context, filter models.ActionPhotoFilter) ([]models.ActionPhoto, error)
}

type InboxService interface {
	GetSubmission(ctx context.Context, id uuid.UUID) (*models.ContactSubmission, error)
	UpdateSubmission(ctx context.Context, id uuid.UUID, req dto.UpdateSubmissionRequest) (*models.ContactSubmission, error)
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
	ListSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.ContactSubmission, error)
}

type AssetService interface {
	UploadAsset(ctx context.Context, entity string, id uuid.UUID, field string, up services.Upload) (string, error)
}

// ContentService is the administrative write path, implemented by
// content_service.ContentService.
type ContentService interface {
	ProfileService
	AcademyService
	ExperienceService
	ShowcaseService
	InboxService
	AssetService
}

type SubmissionService interface {
	Submit(ctx context.Context, raw submission.RawSubmission) (*models.ContactSubmission, error)
}

type HomepageService interface {
	Build(ctx context.Context, form homepage.Form) (*homepage.Payload, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type Routers struct {
	log         *slog.Logger
	Content     ContentService
	Submissions SubmissionService
	Homepage    HomepageService
	Auth        AuthService
	Site        dto.SiteResponse
}

func NewRouter(log *slog.Logger, content ContentService, submissions SubmissionService, home HomepageService, auth AuthService, site dto.SiteResponse) *Routers {
	return &Routers{
		log:         log,
		Content:     content,
		Submissions: submissions,
		Homepage:    home,
		Auth:        auth,
		Site:        site,
	}
}

var ErrInvalidUUID = errors.New("not valid UUID")

// serviceError maps service and storage errors onto admin API responses.
func (r *Routers) serviceError(c echo.Context, log *slog.Logger, err error) error {
	switch {
	case errors.Is(err, storage.ErrSingletonViolation):
		log.Warn("singleton already exists", sl.Err(err))
		return c.JSON(http.StatusConflict, response.ErrSingletonExists)
	case errors.Is(err, storage.ErrUniqueViolation):
		log.Warn("unique violation", sl.Err(err))
		return c.JSON(http.StatusConflict, response.ErrAlreadyExists)
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, services.ErrUnknownAsset):
		log.Info("not found", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, storage.ErrInvalidValue), errors.Is(err, storage.ErrNoFields):
		log.Info("invalid value", sl.Err(err))
		return c.JSON(http.StatusUnprocessableEntity, response.ErrorResponseWithDetails("invalid_value", err.Error()))
	case errors.Is(err, storage.ErrInvalidFileType):
		return c.JSON(http.StatusUnsupportedMediaType, response.ErrorResponseWithDetails("invalid_file_type", err.Error()))
	case errors.Is(err, storage.ErrFileTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponseWithDetails("file_too_large", err.Error()))
	}

	log.Error("request failed", sl.Err(err))
	return c.JSON(http.StatusInternalServerError, response.ErrInternal)
}

// bindRequest binds and validates req, writing a 400 on failure. ok is false
// when the response has already been sent.
func (r *Routers) bindRequest(c echo.Context, log *slog.Logger, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return false, c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return false, c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	return true, nil
}

func (r *Routers) pathID(c echo.Context, log *slog.Logger, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		log.Warn("error parse uuid", slog.String("param", name), sl.Err(err))
		return uuid.Nil, false, c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_id", ErrInvalidUUID.Error()))
	}

	return id, true, nil
}
