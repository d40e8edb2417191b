package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"portfolio/internal/domain/models"
	services "portfolio/internal/services/content_service"
	"portfolio/internal/transport/http/dto"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Store is the part of the content service the seeder writes through, so
// seeded data gets the same validation and defaults as admin edits.
type Store interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	CreateProfile(ctx context.Context, req dto.ProfileRequest) (*models.Profile, error)
	GetAcademy(ctx context.Context) (*models.AcademyProfile, error)
	CreateAcademy(ctx context.Context, req dto.AcademyRequest) (*models.AcademyProfile, error)
	ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error)
	AddGalleryImage(ctx context.Context, up services.Upload, caption string, order int) (*models.GalleryImage, error)

	ListExperiences(ctx context.Context, filter models.ExperienceFilter) ([]models.Experience, error)
	CreateExperience(ctx context.Context, req dto.ExperienceRequest) (*models.Experience, error)
	ListCertifications(ctx context.Context, filter models.CertificationFilter) ([]models.Certification, error)
	CreateCertification(ctx context.Context, req dto.CertificationRequest) (*models.Certification, error)
	ListCompanyLogos(ctx context.Context, filter models.CompanyFilter) ([]models.CompanyLogo, error)
	CreateCompanyLogo(ctx context.Context, req dto.CompanyLogoRequest) (*models.CompanyLogo, error)
	ListTestimonials(ctx context.Context, filter models.TestimonialFilter) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, req dto.TestimonialRequest) (*models.Testimonial, error)
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	CreateProject(ctx context.Context, req dto.ProjectRequest) (*models.Project, error)
	ListActionPhotos(ctx context.Context, filter models.ActionPhotoFilter) ([]models.ActionPhoto, error)
	CreateActionPhoto(ctx context.Context, req dto.ActionPhotoRequest) (*models.ActionPhoto, error)

	UploadAsset(ctx context.Context, entity string, id uuid.UUID, field string, up services.Upload) (string, error)
}

// Report counts what a run did.
type Report struct {
	Created  int
	Skipped  int
	Uploaded int
	Warnings int
}

type Seeder struct {
	store Store
	out   io.Writer

	ok   *color.Color
	warn *color.Color
}

func New(store Store, out io.Writer) *Seeder {
	return &Seeder{
		store: store,
		out:   out,
		ok:    color.New(color.FgGreen),
		warn:  color.New(color.FgYellow),
	}
}

func (s *Seeder) created(r *Report, format string, args ...interface{}) {
	r.Created++
	s.ok.Fprintf(s.out, "✓ "+format+"\n", args...)
}

func (s *Seeder) skipped(r *Report, format string, args ...interface{}) {
	r.Skipped++
	fmt.Fprintf(s.out, "- "+format+"\n", args...)
}

func (s *Seeder) warned(r *Report, format string, args ...interface{}) {
	r.Warnings++
	s.warn.Fprintf(s.out, "⚠ "+format+"\n", args...)
}

// Populate creates every fixture record that does not exist yet, matching on
// natural keys. Running it twice creates nothing the second time.
func (s *Seeder) Populate(ctx context.Context, f *Fixture) (Report, error) {
	const op = "seed.Populate"

	var r Report

	steps := []func(context.Context, *Fixture, *Report) error{
		s.populateProfile,
		s.populateAcademy,
		s.populateExperiences,
		s.populateCertifications,
		s.populateCompanies,
		s.populateTestimonials,
		s.populateProjects,
		s.populateActionPhotos,
	}

	for _, step := range steps {
		if err := step(ctx, f, &r); err != nil {
			return r, fmt.Errorf("%s: %w", op, err)
		}
	}

	return r, nil
}

func (s *Seeder) populateProfile(ctx context.Context, f *Fixture, r *Report) error {
	if f.Profile == nil {
		return nil
	}

	existing, err := s.store.GetProfile(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		s.skipped(r, "profile already exists")
		return nil
	}

	if _, err := s.store.CreateProfile(ctx, f.Profile.request()); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	s.created(r, "Created profile %s", f.Profile.Name)

	return nil
}

func (s *Seeder) populateAcademy(ctx context.Context, f *Fixture, r *Report) error {
	if f.Academy == nil {
		return nil
	}

	existing, err := s.store.GetAcademy(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		s.skipped(r, "academy already exists")
		return nil
	}

	if _, err := s.store.CreateAcademy(ctx, f.Academy.request()); err != nil {
		return fmt.Errorf("academy: %w", err)
	}
	s.created(r, "Created academy %s", f.Academy.Title)

	return nil
}

func (s *Seeder) populateExperiences(ctx context.Context, f *Fixture, r *Report) error {
	existing, err := s.store.ListExperiences(ctx, models.ExperienceFilter{})
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[key(e.Company, e.Role)] = true
	}

	for _, e := range f.Experiences {
		k := key(e.Company, e.Role)
		if seen[k] {
			s.skipped(r, "experience %s at %s exists", e.Role, e.Company)
			continue
		}
		if _, err := s.store.CreateExperience(ctx, e.request()); err != nil {
			return fmt.Errorf("experience %s at %s: %w", e.Role, e.Company, err)
		}
		seen[k] = true
		s.created(r, "Created experience: %s at %s", e.Role, e.Company)
	}

	return nil
}

func (s *Seeder) populateCertifications(ctx context.Context, f *Fixture, r *Report) error {
	existing, err := s.store.ListCertifications(ctx, models.CertificationFilter{})
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[key(c.Name)] = true
	}

	for _, c := range f.Certifications {
		if seen[key(c.Name)] {
			s.skipped(r, "certification %s exists", c.Name)
			continue
		}
		if _, err := s.store.CreateCertification(ctx, c.request()); err != nil {
			return fmt.Errorf("certification %s: %w", c.Name, err)
		}
		seen[key(c.Name)] = true
		s.created(r, "Created certification: %s", c.Name)
	}

	return nil
}

func (s *Seeder) populateCompanies(ctx context.Context, f *Fixture, r *Report) error {
	existing, err := s.store.ListCompanyLogos(ctx, models.CompanyFilter{})
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[key(c.CompanyName)] = true
	}

	for _, c := range f.Companies {
		if seen[key(c.CompanyName)] {
			s.skipped(r, "company %s exists", c.CompanyName)
			continue
		}
		if _, err := s.store.CreateCompanyLogo(ctx, c.request()); err != nil {
			return fmt.Errorf("company %s: %w", c.CompanyName, err)
		}
		seen[key(c.CompanyName)] = true
		s.created(r, "Created company: %s", c.CompanyName)
	}

	return nil
}

func (s *Seeder) populateTestimonials(ctx context.Context, f *Fixture, r *Report) error {
	existing, err := s.store.ListTestimonials(ctx, models.TestimonialFilter{})
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[key(t.Name)] = true
	}

	for _, t := range f.Testimonials {
		if seen[key(t.Name)] {
			s.skipped(r, "testimonial from %s exists", t.Name)
			continue
		}
		if _, err := s.store.CreateTestimonial(ctx, t.request()); err != nil {
			return fmt.Errorf("testimonial %s: %w", t.Name, err)
		}
		seen[key(t.Name)] = true
		s.created(r, "Created testimonial: %s", t.Name)
	}

	return nil
}

// Projects match on slug when the fixture sets one, otherwise on title.
func (s *Seeder) populateProjects(ctx context.Context, f *Fixture, r *Report) error {
	existing, err := s.store.ListProjects(ctx, models.ProjectFilter{})
	if err != nil {
		return err
	}

	slugs := make(map[string]bool, len(existing))
	titles := make(map[string]bool, len(existing))
	for _, p := range existing {
		slugs[key(p.Slug)] = true
		titles[key(p.Title)] = true
	}

	for _, p := range f.Projects {
		if (p.Slug != "" && slugs[key(p.Slug)]) || titles[key(p.Title)] {
			s.skipped(r, "project %s exists", p.Title)
			continue
		}
		created, err := s.store.CreateProject(ctx, p.request())
		if err != nil {
			return fmt.Errorf("project %s: %w", p.Title, err)
		}
		slugs[key(created.Slug)] = true
		titles[key(p.Title)] = true
		s.created(r, "Created project: %s", p.Title)
	}

	return nil
}

func (s *Seeder) populateActionPhotos(ctx context.Context, f *Fixture, r *Report) error {
	existing, err := s.store.ListActionPhotos(ctx, models.ActionPhotoFilter{})
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[key(a.Title)] = true
	}

	for _, a := range f.ActionPhotos {
		if seen[key(a.Title)] {
			s.skipped(r, "action photo %s exists", a.Title)
			continue
		}
		if _, err := s.store.CreateActionPhoto(ctx, a.request()); err != nil {
			return fmt.Errorf("action photo %s: %w", a.Title, err)
		}
		seen[key(a.Title)] = true
		s.created(r, "Created action photo: %s", a.Title)
	}

	return nil
}

// UploadImages attaches the fixture's image files, resolved under assetsDir,
// to records that already exist. Missing files and records are warnings.
func (s *Seeder) UploadImages(ctx context.Context, f *Fixture, assetsDir string) (Report, error) {
	const op = "seed.UploadImages"

	var r Report

	steps := []func(context.Context, *Fixture, string, *Report) error{
		s.uploadProfilePhoto,
		s.uploadCompanyLogos,
		s.uploadAcademyImages,
		s.uploadActionPhotos,
	}

	for _, step := range steps {
		if err := step(ctx, f, assetsDir, &r); err != nil {
			return r, fmt.Errorf("%s: %w", op, err)
		}
	}

	return r, nil
}

func (s *Seeder) uploadProfilePhoto(ctx context.Context, f *Fixture, dir string, r *Report) error {
	name := f.Images.ProfilePhoto
	if name == "" {
		return nil
	}

	profile, err := s.store.GetProfile(ctx)
	if err != nil {
		return err
	}
	if profile == nil {
		s.warned(r, "Profile entry not found")
		return nil
	}

	ok, err := s.attach(filepath.Join(dir, name), func(up services.Upload) error {
		_, err := s.store.UploadAsset(ctx, "profile", profile.ID, "profile_photo", up)
		return err
	})
	if err != nil {
		return fmt.Errorf("profile photo: %w", err)
	}
	if !ok {
		s.warned(r, "Profile photo not found: %s", name)
		return nil
	}

	r.Uploaded++
	s.ok.Fprintf(s.out, "✓ Uploaded profile photo: %s\n", filepath.Base(name))

	return nil
}

func (s *Seeder) uploadCompanyLogos(ctx context.Context, f *Fixture, dir string, r *Report) error {
	if len(f.Images.CompanyLogos) == 0 {
		return nil
	}

	companies, err := s.store.ListCompanyLogos(ctx, models.CompanyFilter{})
	if err != nil {
		return err
	}

	byName := make(map[string]models.CompanyLogo, len(companies))
	for _, c := range companies {
		byName[key(c.CompanyName)] = c
	}

	for _, name := range sortedKeys(f.Images.CompanyLogos) {
		file := f.Images.CompanyLogos[name]

		company, found := byName[key(name)]
		if !found {
			s.warned(r, "Company not found: %s", name)
			continue
		}

		ok, err := s.attach(filepath.Join(dir, file), func(up services.Upload) error {
			_, err := s.store.UploadAsset(ctx, "companies", company.ID, "logo", up)
			return err
		})
		if err != nil {
			return fmt.Errorf("logo for %s: %w", name, err)
		}
		if !ok {
			s.warned(r, "Logo not found: %s", file)
			continue
		}

		r.Uploaded++
		s.ok.Fprintf(s.out, "✓ Uploaded logo for %s\n", name)
	}

	return nil
}

// The hero image is only set when the academy has none; gallery files are
// skipped when an image with the same caption exists.
func (s *Seeder) uploadAcademyImages(ctx context.Context, f *Fixture, dir string, r *Report) error {
	if len(f.Images.AcademyHero) == 0 && len(f.Images.Gallery) == 0 {
		return nil
	}

	academy, err := s.store.GetAcademy(ctx)
	if err != nil {
		return err
	}
	if academy == nil {
		s.warned(r, "Academy entry not found")
		return nil
	}

	if academy.HeroImage == "" {
		for _, candidate := range f.Images.AcademyHero {
			ok, err := s.attach(filepath.Join(dir, candidate), func(up services.Upload) error {
				_, err := s.store.UploadAsset(ctx, "academy", academy.ID, "hero_image", up)
				return err
			})
			if err != nil {
				return fmt.Errorf("academy hero: %w", err)
			}
			if ok {
				r.Uploaded++
				s.ok.Fprintf(s.out, "✓ Uploaded academy hero image: %s\n", filepath.Base(candidate))
				break
			}
		}
	}

	gallery, err := s.store.ListGalleryImages(ctx)
	if err != nil {
		return err
	}

	captions := make(map[string]bool, len(gallery))
	for _, img := range gallery {
		captions[key(img.Caption)] = true
	}

	for i, file := range f.Images.Gallery {
		caption := captionFor(file)
		if captions[key(caption)] {
			s.skipped(r, "gallery image %s exists", caption)
			continue
		}

		ok, err := s.attach(filepath.Join(dir, file), func(up services.Upload) error {
			_, err := s.store.AddGalleryImage(ctx, up, caption, i)
			return err
		})
		if err != nil {
			return fmt.Errorf("gallery image %s: %w", file, err)
		}
		if !ok {
			s.warned(r, "Gallery photo not found: %s", file)
			continue
		}

		captions[key(caption)] = true
		r.Uploaded++
		s.ok.Fprintf(s.out, "✓ Added gallery image: %s\n", filepath.Base(file))
	}

	return nil
}

func (s *Seeder) uploadActionPhotos(ctx context.Context, f *Fixture, dir string, r *Report) error {
	var wanted []ActionPhotoFixture
	for _, a := range f.ActionPhotos {
		if a.Image != "" {
			wanted = append(wanted, a)
		}
	}
	if len(wanted) == 0 {
		return nil
	}

	photos, err := s.store.ListActionPhotos(ctx, models.ActionPhotoFilter{})
	if err != nil {
		return err
	}

	byTitle := make(map[string]models.ActionPhoto, len(photos))
	for _, p := range photos {
		byTitle[key(p.Title)] = p
	}

	for _, a := range wanted {
		photo, found := byTitle[key(a.Title)]
		if !found {
			s.warned(r, "Action photo not found: %s", a.Title)
			continue
		}
		if photo.Image != "" {
			s.skipped(r, "action photo %s already has an image", a.Title)
			continue
		}

		ok, err := s.attach(filepath.Join(dir, a.Image), func(up services.Upload) error {
			_, err := s.store.UploadAsset(ctx, "action-photos", photo.ID, "image", up)
			return err
		})
		if err != nil {
			return fmt.Errorf("action photo %s: %w", a.Title, err)
		}
		if !ok {
			s.warned(r, "Action photo file not found: %s", a.Image)
			continue
		}

		r.Uploaded++
		s.ok.Fprintf(s.out, "✓ Uploaded action photo: %s\n", a.Title)
	}

	return nil
}

// attach opens path and hands it to upload. ok is false when the file does
// not exist.
func (s *Seeder) attach(path string, upload func(services.Upload) error) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	return true, upload(services.Upload{Reader: f, Filename: filepath.Base(path)})
}

func captionFor(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func key(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "\x00")
}
