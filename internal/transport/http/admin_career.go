package http

import (
	"log/slog"
	"net/http"

	"portfolio/internal/transport/http/dto"
	"portfolio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListExperiences godoc
// @Summary List experiences
// @Description Ordered by start date (newest first), then display order.
// @Tags experiences
// @Produce json
// @Param is_current query boolean false "Current positions only"
// @Param q query string false "Search role, company and description"
// @Success 200 {array} models.Experience
// @Security ApiKeyAuth
// @Router /admin/api/v1/experiences [get]
func (r *Routers) ListExperiences(c echo.Context) error {
	const op = "http.routers.ListExperiences"
	log := r.log.With(slog.String("op", op))

	filter, err := experienceFilter(c)
	if err != nil {
		return badFilter(c, err)
	}

	items, err := r.Content.ListExperiences(c.Request().Context(), filter)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return listResponse(c, items, len(items))
}

func (r *Routers) GetExperience(c echo.Context) error {
	const op = "http.routers.GetExperience"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	item, err := r.Content.GetExperience(c.Request().Context(), id)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) CreateExperience(c echo.Context) error {
	const op = "http.routers.CreateExperience"
	log := r.log.With(slog.String("op", op))

	var req dto.ExperienceRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.CreateExperience(c.Request().Context(), req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	log.Info("experience created", slog.String("id", item.ID.String()))

	return c.JSON(http.StatusCreated, response.SuccessResponse(item))
}

func (r *Routers) UpdateExperience(c echo.Context) error {
	const op = "http.routers.UpdateExperience"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	var req dto.UpdateExperienceRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.UpdateExperience(c.Request().Context(), id, req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) DeleteExperience(c echo.Context) error {
	const op = "http.routers.DeleteExperience"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	if err := r.Content.DeleteExperience(c.Request().Context(), id); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) ListCertifications(c echo.Context) error {
	const op = "http.routers.ListCertifications"
	log := r.log.With(slog.String("op", op))

	items, err := r.Content.ListCertifications(c.Request().Context(), certificationFilter(c))
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return listResponse(c, items, len(items))
}

func (r *Routers) GetCertification(c echo.Context) error {
	const op = "http.routers.GetCertification"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	item, err := r.Content.GetCertification(c.Request().Context(), id)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) CreateCertification(c echo.Context) error {
	const op = "http.routers.CreateCertification"
	log := r.log.With(slog.String("op", op))

	var req dto.CertificationRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.CreateCertification(c.Request().Context(), req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(item))
}

func (r *Routers) UpdateCertification(c echo.Context) error {
	const op = "http.routers.UpdateCertification"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	var req dto.UpdateCertificationRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.UpdateCertification(c.Request().Context(), id, req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) DeleteCertification(c echo.Context) error {
	const op = "http.routers.DeleteCertification"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	if err := r.Content.DeleteCertification(c.Request().Context(), id); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) ListCompanyLogos(c echo.Context) error {
	const op = "http.routers.ListCompanyLogos"
	log := r.log.With(slog.String("op", op))

	filter, err := companyFilter(c)
	if err != nil {
		return badFilter(c, err)
	}

	items, err := r.Content.ListCompanyLogos(c.Request().Context(), filter)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return listResponse(c, items, len(items))
}

func (r *Routers) GetCompanyLogo(c echo.Context) error {
	const op = "http.routers.GetCompanyLogo"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	item, err := r.Content.GetCompanyLogo(c.Request().Context(), id)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) CreateCompanyLogo(c echo.Context) error {
	const op = "http.routers.CreateCompanyLogo"
	log := r.log.With(slog.String("op", op))

	var req dto.CompanyLogoRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.CreateCompanyLogo(c.Request().Context(), req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(item))
}

func (r *Routers) UpdateCompanyLogo(c echo.Context) error {
	const op = "http.routers.UpdateCompanyLogo"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	var req dto.UpdateCompanyLogoRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.UpdateCompanyLogo(c.Request().Context(), id, req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) DeleteCompanyLogo(c echo.Context) error {
	const op = "http.routers.DeleteCompanyLogo"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	if err := r.Content.DeleteCompanyLogo(c.Request().Context(), id); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}
