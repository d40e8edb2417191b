package http

import (
	"fmt"
	"strconv"
	"strings"

	"portfolio/internal/domain/models"

	"github.com/labstack/echo/v4"
)

// queryBool returns nil when the parameter is absent.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("query parameter %q must be a boolean", name)
	}

	return &v, nil
}

// queryList accepts both repeated parameters and comma separated values.
func queryList(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		out = append(out, models.ParseTags(raw)...)
	}
	return out
}

func experienceFilter(c echo.Context) (models.ExperienceFilter, error) {
	current, err := queryBool(c, "is_current")
	if err != nil {
		return models.ExperienceFilter{}, err
	}

	return models.ExperienceFilter{IsCurrent: current, Query: c.QueryParam("q")}, nil
}

func certificationFilter(c echo.Context) models.CertificationFilter {
	return models.CertificationFilter{
		Organizations: queryList(c, "organization"),
		Query:         c.QueryParam("q"),
	}
}

func companyFilter(c echo.Context) (models.CompanyFilter, error) {
	onHomepage, err := queryBool(c, "display_on_homepage")
	if err != nil {
		return models.CompanyFilter{}, err
	}

	return models.CompanyFilter{OnHomepage: onHomepage, Query: c.QueryParam("q")}, nil
}

func submissionFilter(c echo.Context) (models.SubmissionFilter, error) {
	isRead, err := queryBool(c, "is_read")
	if err != nil {
		return models.SubmissionFilter{}, err
	}

	f := models.SubmissionFilter{
		IsRead:       isRead,
		InterestType: models.InterestType(c.QueryParam("interest_type")),
		AgeGroup:     models.AgeGroup(c.QueryParam("age_group")),
		Query:        c.QueryParam("q"),
	}

	if f.InterestType != "" && !f.InterestType.Valid() {
		return f, fmt.Errorf("unknown interest_type %q", f.InterestType)
	}
	if f.AgeGroup != "" && !f.AgeGroup.Valid() {
		return f, fmt.Errorf("unknown age_group %q", f.AgeGroup)
	}

	return f, nil
}

func testimonialFilter(c echo.Context) (models.TestimonialFilter, error) {
	featured, err := queryBool(c, "is_featured")
	return models.TestimonialFilter{Featured: featured}, err
}

func projectFilter(c echo.Context) (models.ProjectFilter, error) {
	featured, err := queryBool(c, "is_featured")
	return models.ProjectFilter{Featured: featured, Tag: strings.TrimSpace(c.QueryParam("tag"))}, err
}

func actionPhotoFilter(c echo.Context) (models.ActionPhotoFilter, error) {
	featured, err := queryBool(c, "featured")
	if err != nil {
		return models.ActionPhotoFilter{}, err
	}

	categories := queryList(c, "category")
	for _, cat := range categories {
		if !models.PhotoCategory(cat).Valid() {
			return models.ActionPhotoFilter{}, fmt.Errorf("unknown category %q", cat)
		}
	}

	return models.ActionPhotoFilter{Categories: categories, Featured: featured}, nil
}
