package dto

// Dates travel as YYYY-MM-DD. Update requests use pointers: a nil field is
// left untouched.

type ProfileRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Title        string `json:"title" validate:"required,max=200"`
	Bio          string `json:"bio"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"max=20"`
	LinkedinURL  string `json:"linkedin_url" validate:"omitempty,url"`
	InstagramURL string `json:"instagram_url" validate:"omitempty,url"`
	TwitterURL   string `json:"twitter_url" validate:"omitempty,url"`
}

type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Bio          *string `json:"bio,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	LinkedinURL  *string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	InstagramURL *string `json:"instagram_url,omitempty" validate:"omitempty,url"`
	TwitterURL   *string `json:"twitter_url,omitempty" validate:"omitempty,url"`
}

type AcademyRequest struct {
	Title              string `json:"title" validate:"required,max=200"`
	Subtitle           string `json:"subtitle" validate:"max=300"`
	Description        string `json:"description"`
	AgeGroups          string `json:"age_groups" validate:"max=100"`
	Locations          string `json:"locations"`
	TrainingPhilosophy string `json:"training_philosophy"`
}

type UpdateAcademyRequest struct {
	Title              *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Subtitle           *string `json:"subtitle,omitempty" validate:"omitempty,max=300"`
	Description        *string `json:"description,omitempty"`
	AgeGroups          *string `json:"age_groups,omitempty" validate:"omitempty,max=100"`
	Locations          *string `json:"locations,omitempty"`
	TrainingPhilosophy *string `json:"training_philosophy,omitempty"`
}

// ChildImageRequest updates a gallery or project image. The image file itself
// is attached through the upload endpoint.
type ChildImageRequest struct {
	Caption      *string `json:"caption,omitempty" validate:"omitempty,max=300"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

type ExperienceRequest struct {
	Company      string `json:"company" validate:"required,max=200"`
	Role         string `json:"role" validate:"required,max=200"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description  string `json:"description"`
	IsCurrent    bool   `json:"is_current"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateExperienceRequest struct {
	Company      *string `json:"company,omitempty" validate:"omitempty,min=1,max=200"`
	Role         *string `json:"role,omitempty" validate:"omitempty,min=1,max=200"`
	StartDate    *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description  *string `json:"description,omitempty"`
	IsCurrent    *bool   `json:"is_current,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

type CertificationRequest struct {
	Name                string `json:"name" validate:"required,max=300"`
	IssuingOrganization string `json:"issuing_organization" validate:"required,max=200"`
	IssueDate           string `json:"issue_date" validate:"required,datetime=2006-01-02"`
	CredentialID        string `json:"credential_id" validate:"max=100"`
	DisplayOrder        int    `json:"display_order"`
}

type UpdateCertificationRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=1,max=300"`
	IssuingOrganization *string `json:"issuing_organization,omitempty" validate:"omitempty,min=1,max=200"`
	IssueDate           *string `json:"issue_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CredentialID        *string `json:"credential_id,omitempty" validate:"omitempty,max=100"`
	DisplayOrder        *int    `json:"display_order,omitempty"`
}

type CompanyLogoRequest struct {
	CompanyName       string `json:"company_name" validate:"required,max=200"`
	WebsiteURL        string `json:"website_url" validate:"omitempty,url"`
	DisplayOnHomepage *bool  `json:"display_on_homepage"`
	DisplayOrder      int    `json:"display_order"`
}

type UpdateCompanyLogoRequest struct {
	CompanyName       *string `json:"company_name,omitempty" validate:"omitempty,min=1,max=200"`
	WebsiteURL        *string `json:"website_url,omitempty" validate:"omitempty,url"`
	DisplayOnHomepage *bool   `json:"display_on_homepage,omitempty"`
	DisplayOrder      *int    `json:"display_order,omitempty"`
}

// UpdateSubmissionRequest carries the only mutable submission fields.
type UpdateSubmissionRequest struct {
	IsRead     *bool   `json:"is_read,omitempty"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

type TestimonialRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Role         string `json:"role" validate:"max=200"`
	Company      string `json:"company" validate:"max=200"`
	Quote        string `json:"quote" validate:"required,max=500"`
	Rating       int    `json:"rating"`
	IsFeatured   bool   `json:"is_featured"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateTestimonialRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Role         *string `json:"role,omitempty" validate:"omitempty,max=200"`
	Company      *string `json:"company,omitempty" validate:"omitempty,max=200"`
	Quote        *string `json:"quote,omitempty" validate:"omitempty,min=1,max=500"`
	Rating       *int    `json:"rating,omitempty"`
	IsFeatured   *bool   `json:"is_featured,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

type ProjectRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Slug         string `json:"slug" validate:"max=200"`
	Subtitle     string `json:"subtitle" validate:"max=300"`
	Problem      string `json:"problem"`
	Solution     string `json:"solution"`
	Impact       string `json:"impact"`
	Tags         string `json:"tags" validate:"max=500"`
	IsFeatured   bool   `json:"is_featured"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateProjectRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Slug         *string `json:"slug,omitempty" validate:"omitempty,max=200"`
	Subtitle     *string `json:"subtitle,omitempty" validate:"omitempty,max=300"`
	Problem      *string `json:"problem,omitempty"`
	Solution     *string `json:"solution,omitempty"`
	Impact       *string `json:"impact,omitempty"`
	Tags         *string `json:"tags,omitempty" validate:"omitempty,max=500"`
	IsFeatured   *bool   `json:"is_featured,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

type ActionPhotoRequest struct {
	Title              string `json:"title" validate:"required,max=200"`
	Category           string `json:"category"`
	Caption            string `json:"caption" validate:"max=300"`
	IsFeaturedHomepage bool   `json:"is_featured_homepage"`
	DisplayOrder       int    `json:"display_order"`
}

type UpdateActionPhotoRequest struct {
	Title              *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Category           *string `json:"category,omitempty"`
	Caption            *string `json:"caption,omitempty" validate:"omitempty,max=300"`
	IsFeaturedHomepage *bool   `json:"is_featured_homepage,omitempty"`
	DisplayOrder       *int    `json:"display_order,omitempty"`
}

// SiteResponse is the admin surface branding.
type SiteResponse struct {
	SiteHeader string `json:"site_header"`
	SiteTitle  string `json:"site_title"`
	IndexTitle string `json:"index_title"`
}
