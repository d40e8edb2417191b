package homepage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/metrics"
	"portfolio/internal/services/submission"

	"github.com/patrickmn/go-cache"
)

const cacheKey = "homepage"

// ContentReader is the read side of the content store.
type ContentReader interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	GetAcademy(ctx context.Context) (*models.AcademyProfile, error)
	ListExperiences(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error)
	ListCertifications(ctx context.Context, filter models.CertificationFilter) ([]models.Certification, error)
	ListCompanyLogos(ctx context.Context, filter models.CompanyFilter) ([]models.CompanyLogo, error)
	ListTestimonials(ctx context.Context, filter models.TestimonialFilter) ([]models.Testimonial, error)
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	ListActionPhotos(ctx context.Context, filter models.ActionPhotoFilter) ([]models.ActionPhoto, error)
}

// Form describes the contact form: prior values and field errors after a
// failed submit, empty defaults otherwise.
type Form struct {
	Values          submission.RawSubmission
	Errors          map[string]string
	InterestChoices []models.Choice
	AgeGroupChoices []models.Choice
}

func EmptyForm() Form {
	return Form{
		Values:          submission.RawSubmission{InterestType: string(models.InterestGeneral)},
		Errors:          map[string]string{},
		InterestChoices: models.InterestChoices,
		AgeGroupChoices: models.AgeGroupChoices,
	}
}

// FormWithErrors re-displays rejected input. The honeypot is never echoed.
func FormWithErrors(verr *submission.ValidationError) Form {
	f := EmptyForm()
	f.Values = verr.Input
	f.Values.Honeypot = ""
	f.Errors = verr.Fields
	return f
}

// Payload is everything the landing page renders. Absent singletons are nil;
// collections are empty, never nil.
type Payload struct {
	Profile        *models.Profile
	Experiences    []models.Experience
	Academy        *models.AcademyProfile
	Certifications []models.Certification
	Companies      []models.CompanyLogo
	Testimonials   []models.Testimonial
	Projects       []models.Project
	ActionPhotos   []models.ActionPhoto
	Form           Form
}

// BuildHomepagePayload reads the store in one pass. It only reads and
// tolerates an empty store.
func BuildHomepagePayload(ctx context.Context, content ContentReader, form Form) (*Payload, error) {
	const op = "homepage.BuildHomepagePayload"

	var (
		p   = &Payload{Form: form}
		err error
	)

	if p.Profile, err = content.GetProfile(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if p.Academy, err = content.GetAcademy(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if p.Experiences, err = content.ListExperiences(ctx, models.ExperienceFilter{}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if p.Certifications, err = content.ListCertifications(ctx, models.CertificationFilter{}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if p.Companies, err = content.ListCompanyLogos(ctx, models.CompanyFilter{OnHomepage: models.Bool(true)}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if p.Testimonials, err = content.ListTestimonials(ctx, models.TestimonialFilter{Featured: models.Bool(true)}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if p.Projects, err = content.ListProjects(ctx, models.ProjectFilter{Featured: models.Bool(true)}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if p.ActionPhotos, err = content.ListActionPhotos(ctx, models.ActionPhotoFilter{Featured: models.Bool(true)}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ensureSlices(p)

	return p, nil
}

func ensureSlices(p *Payload) {
	if p.Experiences == nil {
		p.Experiences = []models.Experience{}
	}
	if p.Certifications == nil {
		p.Certifications = []models.Certification{}
	}
	if p.Companies == nil {
		p.Companies = []models.CompanyLogo{}
	}
	if p.Testimonials == nil {
		p.Testimonials = []models.Testimonial{}
	}
	if p.Projects == nil {
		p.Projects = []models.Project{}
	}
	if p.ActionPhotos == nil {
		p.ActionPhotos = []models.ActionPhoto{}
	}
}

// Service caches the content part of the payload. Any admin write calls
// Invalidate.
type Service struct {
	log     *slog.Logger
	content ContentReader
	cache   *cache.Cache

	// mu guards generation; a build only populates the cache when no
	// Invalidate happened while it was reading.
	mu         sync.Mutex
	generation uint64
}

func New(log *slog.Logger, content ContentReader, ttl time.Duration) *Service {
	return &Service{
		log:     log,
		content: content,
		cache:   cache.New(ttl, 2*ttl),
	}
}

// SetContent wires the reader after construction; the content service and
// this cache depend on each other.
func (s *Service) SetContent(content ContentReader) {
	s.content = content
}

func (s *Service) Build(ctx context.Context, form Form) (*Payload, error) {
	const op = "homepage.Service.Build"

	if cached, ok := s.cache.Get(cacheKey); ok {
		metrics.HomepageCacheHits.WithLabelValues("hit").Inc()
		p := *cached.(*Payload)
		p.Form = form
		return &p, nil
	}
	metrics.HomepageCacheHits.WithLabelValues("miss").Inc()

	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	p, err := BuildHomepagePayload(ctx, s.content, Form{})
	if err != nil {
		s.log.Error("failed to build homepage", slog.String("op", op), sl.Err(err))
		return nil, err
	}

	s.mu.Lock()
	if s.generation == gen {
		s.cache.SetDefault(cacheKey, p)
	}
	s.mu.Unlock()

	out := *p
	out.Form = form
	return &out, nil
}

func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.cache.Flush()
}
