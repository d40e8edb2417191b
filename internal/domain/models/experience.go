package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID           uuid.UUID  `json:"id"`
	Company      string     `json:"company"`
	Role         string     `json:"role"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Description  string     `json:"description"`
	CompanyLogo  string     `json:"company_logo"`
	IsCurrent    bool       `json:"is_current"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (e Experience) String() string {
	return fmt.Sprintf("%s at %s", e.Role, e.Company)
}

func (e Experience) Assets() []string {
	return nonEmpty(e.CompanyLogo)
}

type Certification struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	IssuingOrganization string    `json:"issuing_organization"`
	IssueDate           time.Time `json:"issue_date"`
	CredentialID        string    `json:"credential_id"`
	CertificateImage    string    `json:"certificate_image"`
	DisplayOrder        int       `json:"display_order"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (c Certification) Assets() []string {
	return nonEmpty(c.CertificateImage)
}

type CompanyLogo struct {
	ID                uuid.UUID `json:"id"`
	CompanyName       string    `json:"company_name"`
	Logo              string    `json:"logo"`
	WebsiteURL        string    `json:"website_url"`
	DisplayOnHomepage bool      `json:"display_on_homepage"`
	DisplayOrder      int       `json:"display_order"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (c CompanyLogo) Assets() []string {
	return nonEmpty(c.Logo)
}
