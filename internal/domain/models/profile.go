package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the site owner's "about me" record. At most one exists.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Bio          string    `json:"bio"` // rich text, stored verbatim
	ProfilePhoto string    `json:"profile_photo"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	LinkedinURL  string    `json:"linkedin_url"`
	InstagramURL string    `json:"instagram_url"`
	TwitterURL   string    `json:"twitter_url"`
	Resume       string    `json:"resume"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p Profile) Assets() []string {
	return nonEmpty(p.ProfilePhoto, p.Resume)
}

// AcademyProfile describes the showcased football academy. At most one exists.
type AcademyProfile struct {
	ID                 uuid.UUID      `json:"id"`
	Title              string         `json:"title"`
	Subtitle           string         `json:"subtitle"`
	HeroImage          string         `json:"hero_image"`
	Description        string         `json:"description"`
	AgeGroups          string         `json:"age_groups"`
	Locations          string         `json:"locations"`
	TrainingPhilosophy string         `json:"training_philosophy"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	Gallery            []GalleryImage `json:"gallery,omitempty"`
}

func (a AcademyProfile) Assets() []string {
	return nonEmpty(a.HeroImage)
}

// GalleryImage belongs to an AcademyProfile and is deleted with it.
type GalleryImage struct {
	ID           uuid.UUID `json:"id"`
	AcademyID    uuid.UUID `json:"academy_id"`
	Image        string    `json:"image"`
	Caption      string    `json:"caption"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func nonEmpty(values ...string) []string {
	var res []string
	for _, v := range values {
		if v != "" {
			res = append(res, v)
		}
	}

	return res
}
