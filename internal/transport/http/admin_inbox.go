package http

import (
	"log/slog"
	"net/http"

	"portfolio/internal/transport/http/dto"
	"portfolio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// Contact submissions are created only through the public form. The admin
// API can triage them but never create one.

// ListSubmissions godoc
// @Summary List contact submissions
// @Description Newest first.
// @Tags submissions
// @Produce json
// @Param is_read query boolean false "Read state"
// @Param interest_type query string false "general, academy or both"
// @Param age_group query string false "u6, u8, u10, u12, u15 or other"
// @Param q query string false "Search name, email, subject and message"
// @Success 200 {array} models.ContactSubmission
// @Security ApiKeyAuth
// @Router /admin/api/v1/submissions [get]
func (r *Routers) ListSubmissions(c echo.Context) error {
	const op = "http.routers.ListSubmissions"
	log := r.log.With(slog.String("op", op))

	filter, err := submissionFilter(c)
	if err != nil {
		return badFilter(c, err)
	}

	items, err := r.Content.ListSubmissions(c.Request().Context(), filter)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return listResponse(c, items, len(items))
}

func (r *Routers) GetSubmission(c echo.Context) error {
	const op = "http.routers.GetSubmission"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	item, err := r.Content.GetSubmission(c.Request().Context(), id)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

// UpdateSubmission changes is_read and admin_notes only.
func (r *Routers) UpdateSubmission(c echo.Context) error {
	const op = "http.routers.UpdateSubmission"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	var req dto.UpdateSubmissionRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	item, err := r.Content.UpdateSubmission(c.Request().Context(), id, req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

func (r *Routers) DeleteSubmission(c echo.Context) error {
	const op = "http.routers.DeleteSubmission"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	if err := r.Content.DeleteSubmission(c.Request().Context(), id); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}
