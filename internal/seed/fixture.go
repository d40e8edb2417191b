package seed

import (
	"fmt"
	"os"
	"sort"

	"portfolio/internal/transport/http/dto"

	"gopkg.in/yaml.v3"
)

// Fixture is the seed file layout. Dates are YYYY-MM-DD strings.
type Fixture struct {
	Profile        *ProfileFixture      `yaml:"profile"`
	Academy        *AcademyFixture      `yaml:"academy"`
	Experiences    []ExperienceFixture  `yaml:"experiences"`
	Certifications []CertificateFixture `yaml:"certifications"`
	Companies      []CompanyFixture     `yaml:"companies"`
	Testimonials   []TestimonialFixture `yaml:"testimonials"`
	Projects       []ProjectFixture     `yaml:"projects"`
	ActionPhotos   []ActionPhotoFixture `yaml:"action_photos"`
	Images         ImagesFixture        `yaml:"images"`
}

type ProfileFixture struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Bio          string `yaml:"bio"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"phone"`
	LinkedinURL  string `yaml:"linkedin_url"`
	InstagramURL string `yaml:"instagram_url"`
	TwitterURL   string `yaml:"twitter_url"`
}

type AcademyFixture struct {
	Title              string `yaml:"title"`
	Subtitle           string `yaml:"subtitle"`
	Description        string `yaml:"description"`
	AgeGroups          string `yaml:"age_groups"`
	Locations          string `yaml:"locations"`
	TrainingPhilosophy string `yaml:"training_philosophy"`
}

type ExperienceFixture struct {
	Company      string `yaml:"company"`
	Role         string `yaml:"role"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	Description  string `yaml:"description"`
	IsCurrent    bool   `yaml:"is_current"`
	DisplayOrder int    `yaml:"display_order"`
}

type CertificateFixture struct {
	Name                string `yaml:"name"`
	IssuingOrganization string `yaml:"issuing_organization"`
	IssueDate           string `yaml:"issue_date"`
	CredentialID        string `yaml:"credential_id"`
	DisplayOrder        int    `yaml:"display_order"`
}

type CompanyFixture struct {
	CompanyName       string `yaml:"company_name"`
	WebsiteURL        string `yaml:"website_url"`
	DisplayOnHomepage *bool  `yaml:"display_on_homepage"`
	DisplayOrder      int    `yaml:"display_order"`
}

type TestimonialFixture struct {
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	Company      string `yaml:"company"`
	Quote        string `yaml:"quote"`
	Rating       int    `yaml:"rating"`
	IsFeatured   bool   `yaml:"is_featured"`
	DisplayOrder int    `yaml:"display_order"`
}

type ProjectFixture struct {
	Title        string `yaml:"title"`
	Slug         string `yaml:"slug"`
	Subtitle     string `yaml:"subtitle"`
	Problem      string `yaml:"problem"`
	Solution     string `yaml:"solution"`
	Impact       string `yaml:"impact"`
	Tags         string `yaml:"tags"`
	IsFeatured   bool   `yaml:"is_featured"`
	DisplayOrder int    `yaml:"display_order"`
}

type ActionPhotoFixture struct {
	Title              string `yaml:"title"`
	Category           string `yaml:"category"`
	Caption            string `yaml:"caption"`
	IsFeaturedHomepage bool   `yaml:"is_featured_homepage"`
	DisplayOrder       int    `yaml:"display_order"`
	Image              string `yaml:"image"`
}

// ImagesFixture maps natural keys to files relative to the assets directory.
type ImagesFixture struct {
	ProfilePhoto string            `yaml:"profile_photo"`
	CompanyLogos map[string]string `yaml:"company_logos"`
	// AcademyHero lists candidates; the first existing file wins.
	AcademyHero []string `yaml:"academy_hero"`
	Gallery     []string `yaml:"gallery"`
}

func LoadFixture(path string) (*Fixture, error) {
	const op = "seed.LoadFixture"

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ParseFixture(raw)
}

func ParseFixture(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("seed.ParseFixture: %w", err)
	}

	return &f, nil
}

func (p ProfileFixture) request() dto.ProfileRequest {
	return dto.ProfileRequest{
		Name:         p.Name,
		Title:        p.Title,
		Bio:          p.Bio,
		Email:        p.Email,
		Phone:        p.Phone,
		LinkedinURL:  p.LinkedinURL,
		InstagramURL: p.InstagramURL,
		TwitterURL:   p.TwitterURL,
	}
}

func (a AcademyFixture) request() dto.AcademyRequest {
	return dto.AcademyRequest{
		Title:              a.Title,
		Subtitle:           a.Subtitle,
		Description:        a.Description,
		AgeGroups:          a.AgeGroups,
		Locations:          a.Locations,
		TrainingPhilosophy: a.TrainingPhilosophy,
	}
}

func (e ExperienceFixture) request() dto.ExperienceRequest {
	return dto.ExperienceRequest{
		Company:      e.Company,
		Role:         e.Role,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Description:  e.Description,
		IsCurrent:    e.IsCurrent,
		DisplayOrder: e.DisplayOrder,
	}
}

func (c CertificateFixture) request() dto.CertificationRequest {
	return dto.CertificationRequest{
		Name:                c.Name,
		IssuingOrganization: c.IssuingOrganization,
		IssueDate:           c.IssueDate,
		CredentialID:        c.CredentialID,
		DisplayOrder:        c.DisplayOrder,
	}
}

func (c CompanyFixture) request() dto.CompanyLogoRequest {
	return dto.CompanyLogoRequest{
		CompanyName:       c.CompanyName,
		WebsiteURL:        c.WebsiteURL,
		DisplayOnHomepage: c.DisplayOnHomepage,
		DisplayOrder:      c.DisplayOrder,
	}
}

func (t TestimonialFixture) request() dto.TestimonialRequest {
	return dto.TestimonialRequest{
		Name:         t.Name,
		Role:         t.Role,
		Company:      t.Company,
		Quote:        t.Quote,
		Rating:       t.Rating,
		IsFeatured:   t.IsFeatured,
		DisplayOrder: t.DisplayOrder,
	}
}

func (p ProjectFixture) request() dto.ProjectRequest {
	return dto.ProjectRequest{
		Title:        p.Title,
		Slug:         p.Slug,
		Subtitle:     p.Subtitle,
		Problem:      p.Problem,
		Solution:     p.Solution,
		Impact:       p.Impact,
		Tags:         p.Tags,
		IsFeatured:   p.IsFeatured,
		DisplayOrder: p.DisplayOrder,
	}
}

func (a ActionPhotoFixture) request() dto.ActionPhotoRequest {
	return dto.ActionPhotoRequest{
		Title:              a.Title,
		Category:           a.Category,
		Caption:            a.Caption,
		IsFeaturedHomepage: a.IsFeaturedHomepage,
		DisplayOrder:       a.DisplayOrder,
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
