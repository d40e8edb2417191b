package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/services/auth"
	services "portfolio/internal/services/content_service"
	"portfolio/internal/transport/http/dto"
	"portfolio/internal/transport/http/dto/request"
	"portfolio/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Login godoc
// @Summary Admin login
// @Description Exchanges the administrator email and password for a bearer token.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=map[string]string}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /admin/api/v1/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	token, err := r.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
		}
		log.Error("login failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{
		"access_token": token,
		"token_type":   "Bearer",
	}))
}

// GetSite returns the admin branding texts.
func (r *Routers) GetSite(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(r.Site))
}

func (r *Routers) GetProfile(c echo.Context) error {
	const op = "http.routers.GetProfile"
	log := r.log.With(slog.String("op", op))

	profile, err := r.Content.GetProfile(c.Request().Context())
	if err != nil {
		return r.serviceError(c, log, err)
	}
	if profile == nil {
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(profile))
}

func (r *Routers) CreateProfile(c echo.Context) error {
	const op = "http.routers.CreateProfile"
	log := r.log.With(slog.String("op", op))

	var req dto.ProfileRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	profile, err := r.Content.CreateProfile(c.Request().Context(), req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(profile))
}

func (r *Routers) UpdateProfile(c echo.Context) error {
	const op = "http.routers.UpdateProfile"
	log := r.log.With(slog.String("op", op))

	var req dto.UpdateProfileRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	profile, err := r.Content.UpdateProfile(c.Request().Context(), req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(profile))
}

func (r *Routers) DeleteProfile(c echo.Context) error {
	const op = "http.routers.DeleteProfile"
	log := r.log.With(slog.String("op", op))

	if err := r.Content.DeleteProfile(c.Request().Context()); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAcademy returns the academy with its gallery.
func (r *Routers) GetAcademy(c echo.Context) error {
	const op = "http.routers.GetAcademy"
	log := r.log.With(slog.String("op", op))

	academy, err := r.Content.GetAcademy(c.Request().Context())
	if err != nil {
		return r.serviceError(c, log, err)
	}
	if academy == nil {
		return c.JSON(http.StatusNotFound, response.ErrNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(academy))
}

func (r *Routers) CreateAcademy(c echo.Context) error {
	const op = "http.routers.CreateAcademy"
	log := r.log.With(slog.String("op", op))

	var req dto.AcademyRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	academy, err := r.Content.CreateAcademy(c.Request().Context(), req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(academy))
}

func (r *Routers) UpdateAcademy(c echo.Context) error {
	const op = "http.routers.UpdateAcademy"
	log := r.log.With(slog.String("op", op))

	var req dto.UpdateAcademyRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	academy, err := r.Content.UpdateAcademy(c.Request().Context(), req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(academy))
}

func (r *Routers) DeleteAcademy(c echo.Context) error {
	const op = "http.routers.DeleteAcademy"
	log := r.log.With(slog.String("op", op))

	if err := r.Content.DeleteAcademy(c.Request().Context()); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) ListGalleryImages(c echo.Context) error {
	const op = "http.routers.ListGalleryImages"
	log := r.log.With(slog.String("op", op))

	images, err := r.Content.ListGalleryImages(c.Request().Context())
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return listResponse(c, images, len(images))
}

// AddGalleryImage godoc
// @Summary Add an academy gallery image
// @Tags academy
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Param caption formData string false "Caption"
// @Param display_order formData integer false "Sort position"
// @Success 201 {object} response.Response{data=models.GalleryImage}
// @Failure 404 {object} response.ErrorResponse "No academy profile"
// @Failure 415 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/api/v1/academy/gallery [post]
func (r *Routers) AddGalleryImage(c echo.Context) error {
	const op = "http.routers.AddGalleryImage"
	log := r.log.With(slog.String("op", op))

	up, caption, order, ok, err := r.imageForm(c, log)
	if !ok {
		return err
	}

	img, err := r.Content.AddGalleryImage(c.Request().Context(), up, caption, order)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(img))
}

func (r *Routers) UpdateGalleryImage(c echo.Context) error {
	const op = "http.routers.UpdateGalleryImage"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	var req dto.ChildImageRequest
	if ok, err := r.bindRequest(c, log, &req); !ok {
		return err
	}

	img, err := r.Content.UpdateGalleryImage(c.Request().Context(), id, req)
	if err != nil {
		return r.serviceError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(img))
}

func (r *Routers) DeleteGalleryImage(c echo.Context) error {
	const op = "http.routers.DeleteGalleryImage"
	log := r.log.With(slog.String("op", op))

	id, ok, err := r.pathID(c, log, "id")
	if !ok {
		return err
	}

	if err := r.Content.DeleteGalleryImage(c.Request().Context(), id); err != nil {
		return r.serviceError(c, log, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadAsset replaces one image or document field of a record with the
// multipart "file". idParam is empty for the singletons.
func (r *Routers) UploadAsset(entity, idParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		const op = "http.routers.UploadAsset"
		log := r.log.With(
			slog.String("op", op),
			slog.String("entity", entity),
		)

		field := c.Param("field")
		if !services.HasAssetField(entity, field) {
			return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("not_found", "unknown upload field "+field))
		}

		id := uuid.Nil
		if idParam != "" {
			var (
				ok  bool
				err error
			)
			if id, ok, err = r.pathID(c, log, idParam); !ok {
				return err
			}
		}

		file, err := c.FormFile("file")
		if err != nil {
			log.Warn("empty file in request", sl.Err(err))
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "file is required"))
		}

		path, err := r.Content.UploadAsset(c.Request().Context(), entity, id, field, services.Upload{Header: file})
		if err != nil {
			return r.serviceError(c, log, err)
		}

		return c.JSON(http.StatusOK, response.SuccessResponse(map[string]string{field: path}))
	}
}

// imageForm reads the multipart body shared by gallery and project images.
func (r *Routers) imageForm(c echo.Context, log *slog.Logger) (services.Upload, string, int, bool, error) {
	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("empty file in request", sl.Err(err))
		return services.Upload{}, "", 0, false, c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "file is required"))
	}

	order := 0
	if raw := c.FormValue("display_order"); raw != "" {
		if order, err = strconv.Atoi(raw); err != nil {
			return services.Upload{}, "", 0, false, c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "display_order must be an integer"))
		}
	}

	return services.Upload{Header: file}, c.FormValue("caption"), order, true, nil
}

func listResponse(c echo.Context, items interface{}, count int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   items,
		"meta": map[string]interface{}{
			"count": count,
		},
	})
}

func badFilter(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_filter", err.Error()))
}
