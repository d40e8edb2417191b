package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating      = 1
	MaxRating      = 5
	MaxQuoteLength = 500
)

type Testimonial struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Company      string    `json:"company"`
	Photo        string    `json:"photo"`
	Quote        string    `json:"quote"`
	Rating       int       `json:"rating"`
	IsFeatured   bool      `json:"is_featured"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (t Testimonial) Assets() []string {
	return nonEmpty(t.Photo)
}

// Project is a case study. Tags is stored comma-delimited.
type Project struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Subtitle     string         `json:"subtitle"`
	Problem      string         `json:"problem"`
	Solution     string         `json:"solution"`
	Impact       string         `json:"impact"`
	HeroImage    string         `json:"hero_image"`
	Tags         string         `json:"tags"`
	IsFeatured   bool           `json:"is_featured"`
	DisplayOrder int            `json:"display_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Images       []ProjectImage `json:"images,omitempty"`
}

func (p Project) TagList() []string {
	return ParseTags(p.Tags)
}

// MarshalJSON adds the parsed tags next to the stored string.
func (p Project) MarshalJSON() ([]byte, error) {
	type project Project
	return json.Marshal(struct {
		project
		TagList []string `json:"tag_list"`
	}{project(p), p.TagList()})
}

func (p Project) Assets() []string {
	return nonEmpty(p.HeroImage)
}

type ProjectImage struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	Image        string    `json:"image"`
	Caption      string    `json:"caption"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// ParseTags splits a comma-delimited tag string, trimming whitespace and
// dropping empty segments. Order is preserved.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

type PhotoCategory string

const (
	CategoryCoaching     PhotoCategory = "coaching"
	CategoryScouting     PhotoCategory = "scouting"
	CategoryEvent        PhotoCategory = "event"
	CategoryAcademy      PhotoCategory = "academy"
	CategoryProfessional PhotoCategory = "professional"
	CategoryOther        PhotoCategory = "other"
)

func (c PhotoCategory) Valid() bool {
	switch c {
	case CategoryCoaching, CategoryScouting, CategoryEvent, CategoryAcademy, CategoryProfessional, CategoryOther:
		return true
	}
	return false
}

type ActionPhoto struct {
	ID                 uuid.UUID     `json:"id"`
	Title              string        `json:"title"`
	Image              string        `json:"image"`
	Category           PhotoCategory `json:"category"`
	Caption            string        `json:"caption"`
	IsFeaturedHomepage bool          `json:"is_featured_homepage"`
	DisplayOrder       int           `json:"display_order"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (a ActionPhoto) Assets() []string {
	return nonEmpty(a.Image)
}
