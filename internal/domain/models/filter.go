package models

// List filters mirror the admin list filters and search boxes. Zero values
// mean "no filter".

type ExperienceFilter struct {
	IsCurrent *bool
	Query     string
}

type CertificationFilter struct {
	Organizations []string
	Query         string
}

type CompanyFilter struct {
	OnHomepage *bool
	Query      string
}

type SubmissionFilter struct {
	IsRead       *bool
	InterestType InterestType
	AgeGroup     AgeGroup
	Query        string
}

type TestimonialFilter struct {
	Featured *bool
}

type ProjectFilter struct {
	Featured *bool
	Tag      string
}

type ActionPhotoFilter struct {
	Categories []string
	Featured   *bool
}

// Bool returns a pointer to v, for filters.
func Bool(v bool) *bool {
	return &v
}
