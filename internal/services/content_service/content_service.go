package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
	filestorage "portfolio/internal/storage/filestorage"
)

const dateLayout = "2006-01-02"

// Repositories is the set of stores the content service writes through.
type Repositories struct {
	Profile     repository.ProfileRepository
	Academy     repository.AcademyRepository
	Experience  repository.ExperienceRepository
	Certificate repository.CertificationRepository
	Company     repository.CompanyLogoRepository
	Submission  repository.SubmissionRepository
	Testimonial repository.TestimonialRepository
	Project     repository.ProjectRepository
	ActionPhoto repository.ActionPhotoRepository
}

// FromRepository picks the content repositories out of the aggregate.
func FromRepository(r *repository.Repository) Repositories {
	return Repositories{
		Profile:     r.Profile,
		Academy:     r.Academy,
		Experience:  r.Experience,
		Certificate: r.Certificate,
		Company:     r.Company,
		Submission:  r.Submission,
		Testimonial: r.Testimonial,
		Project:     r.Project,
		ActionPhoto: r.ActionPhoto,
	}
}

// Invalidator drops cached renderings after content changes.
type Invalidator interface {
	Invalidate()
}

// ContentService is the administrative write path over every content entity.
// Each successful mutation invalidates the homepage cache; replaced or
// deleted files are released from asset storage.
type ContentService struct {
	log   *slog.Logger
	repos Repositories
	files filestorage.FileStorage
	cache Invalidator
}

func NewContentService(log *slog.Logger, repos Repositories, files filestorage.FileStorage, cache Invalidator) *ContentService {
	return &ContentService{
		log:   log,
		repos: repos,
		files: files,
		cache: cache,
	}
}

// changed is called after every successful write.
func (s *ContentService) changed() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}

// release deletes stored assets. Failures are logged and never returned.
func (s *ContentService) release(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := s.files.Delete(ctx, p); err != nil {
			s.log.Warn("failed to release asset", slog.String("path", p), sl.Err(err))
		}
	}
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, invalid(field, "must be a date in YYYY-MM-DD format")
	}

	return t, nil
}

func invalid(field, reason string) error {
	return fmt.Errorf("%s %s: %w", field, reason, storage.ErrInvalidValue)
}

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

var slugStrip = regexp.MustCompile(`[^a-z0-9_\-]+`)

func generateSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugStrip.ReplaceAllString(slug, "")
	return strings.Trim(slug, "-")
}

func validateSlug(slug string) error {
	if slug == "" || !slugPattern.MatchString(slug) {
		return invalid("slug", "must be non-empty and contain only letters, numbers, underscores or hyphens")
	}

	return nil
}
