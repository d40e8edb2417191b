package http

import (
	"log/slog"
	"net/http"

	"portfolio/internal/transport/http/dto"
	"portfolio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func (r *Routers) ListTestimonials(c echo.Context) error {
	const op = "http.routers.ListTestimonials"
	log := r.log.With(slog.String("op", op))

	filter, err := testimonialFilter(c)
	if err != nil {
		return badFilter(c, err)
	}

	items, err := r.Content.ListTestimonials(c.Request().Context(), filter)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return listResponse(c, items, len(items))
}

func (r *Routers) GetTestimonial(c echo.Context) error {
	const op = "http.routers.GetTestimonial"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	item, err := r.Content.GetTestimonial(c.Request().Context(), id)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) CreateTestimonial(c echo.Context) error {
	const op = "http.routers.CreateTestimonial"
	log := r.log.With(slog.String("op", op))

	var req dto.TestimonialRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.CreateTestimonial(c.Request().Context(), req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(item))
}

func (r *Routers) UpdateTestimonial(c echo.Context) error {
	const op = "http.routers.UpdateTestimonial"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	var req dto.UpdateTestimonialRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.UpdateTestimonial(c.Request().Context(), id, req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) DeleteTestimonial(c echo.Context) error {
	const op = "http.routers.DeleteTestimonial"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	if err := r.Content.DeleteTestimonial(c.Request().Context(), id); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Param is_featured query boolean false "Featured only"
// @Param tag query string false "Exact tag, case-insensitive"
// @Success 200 {array} models.Project
// @Security ApiKeyAuth
// @Router /admin/api/v1/projects [get]
func (r *Routers) ListProjects(c echo.Context) error {
	const op = "http.routers.ListProjects"
	log := r.log.With(slog.String("op", op))

	filter, err := projectFilter(c)
	if err != nil {
		return badFilter(c, err)
	}

	items, err := r.Content.ListProjects(c.Request().Context(), filter)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return listResponse(c, items, len(items))
}

func (r *Routers) GetProject(c echo.Context) error {
	const op = "http.routers.GetProject"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	item, err := r.Content.GetProject(c.Request().Context(), id)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) CreateProject(c echo.Context) error {
	const op = "http.routers.CreateProject"
	log := r.log.With(slog.String("op", op))

	var req dto.ProjectRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.CreateProject(c.Request().Context(), req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	log.Info("project created", slog.String("slug", item.Slug))

	return c.JSON(http.StatusCreated, response.SuccessResponse(item))
}

func (r *Routers) UpdateProject(c echo.Context) error {
	const op = "http.routers.UpdateProject"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	var req dto.UpdateProjectRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.UpdateProject(c.Request().Context(), id, req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) DeleteProject(c echo.Context) error {
	const op = "http.routers.DeleteProject"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	if err := r.Content.DeleteProject(c.Request().Context(), id); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) AddProjectImage(c echo.Context) error {
	const op = "http.routers.AddProjectImage"
	log := r.log.With(slog.String("op", op))

	projectID, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	up, caption, order, ok, err := r.imageForm(c, log)
	if !ok {
		return err
	}

	img, err := r.Content.AddProjectImage(c.Request().Context(), projectID, up, caption, order)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(img))
}

func (r *Routers) UpdateProjectImage(c echo.Context) error {
	const op = "http.routers.UpdateProjectImage"
	log := r.log.With(slog.String("op", op))

	projectID, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}
	imageID, ok, err := r.pathID(c, log, "image_id")
	if !ok {
		return err
	}

	var req dto.ChildImageRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	img, err := r.Content.UpdateProjectImage(c.Request().Context(), projectID, imageID, req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(img))
}

func (r *Routers) DeleteProjectImage(c echo.Context) error {
	const op = "http.routers.DeleteProjectImage"
	log := r.log.With(slog.String("op", op))

	projectID, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}
	imageID, ok, err := r.pathID(c, log, "image_id")
	if !ok {
		return err
	}

	if err := r.Content.DeleteProjectImage(c.Request().Context(), projectID, imageID); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) ListActionPhotos(c echo.Context) error {
	const op = "http.routers.ListActionPhotos"
	log := r.log.With(slog.String("op", op))

	filter, err := actionPhotoFilter(c)
	if err != nil {
		return badFilter(c, err)
	}

	items, err := r.Content.ListActionPhotos(c.Request().Context(), filter)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return listResponse(c, items, len(items))
}

func (r *Routers) GetActionPhoto(c echo.Context) error {
	const op = "http.routers.GetActionPhoto"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	item, err := r.Content.GetActionPhoto(c.Request().Context(), id)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) CreateActionPhoto(c echo.Context) error {
	const op = "http.routers.CreateActionPhoto"
	log := r.log.With(slog.String("op", op))

	var req dto.ActionPhotoRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.CreateActionPhoto(c.Request().Context(), req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(item))
}

func (r *Routers) UpdateActionPhoto(c echo.Context) error {
	const op = "http.routers.UpdateActionPhoto"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	var req dto.UpdateActionPhotoRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.UpdateActionPhoto(c.Request().Context(), id, req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) DeleteActionPhoto(c echo.Context) error {
	const op = "http.routers.DeleteActionPhoto"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	if err := r.Content.DeleteActionPhoto(c.Request().Context(), id); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}
