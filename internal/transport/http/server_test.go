package http_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/services/auth"
	services "portfolio/internal/services/content_service"
	"portfolio/internal/services/homepage"
	"portfolio/internal/services/submission"
	"portfolio/internal/storage"
	httprouters "portfolio/internal/transport/http"
	"portfolio/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

// stubContent implements only what a test needs; any other call panics on
// the nil embedded interface.
type stubContent struct {
	httprouters.ContentService

	profile      *models.Profile
	createErr    error
	experiences  []models.Experience
	lastExpFilt  models.ExperienceFilter
	uploadedPath string
	uploadErr    error
	uploadEntity string
	uploadID     uuid.UUID
}

func (s *stubContent) GetProfile(context.Context) (*models.Profile, error) {
	return s.profile, nil
}

func (s *stubContent) CreateProfile(_ context.Context, req dto.ProfileRequest) (*models.Profile, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Profile{ID: uuid.New(), Name: req.Name, Title: req.Title, Email: req.Email}, nil
}

func (s *stubContent) ListExperiences(_ context.Context, f models.ExperienceFilter) ([]models.Experience, error) {
	s.lastExpFilt = f
	return s.experiences, nil
}

func (s *stubContent) UploadAsset(_ context.Context, entity string, id uuid.UUID, _ string, _ services.Upload) (string, error) {
	s.uploadEntity = entity
	s.uploadID = id
	return s.uploadedPath, s.uploadErr
}

type stubHome struct{}

func (stubHome) Build(_ context.Context, form homepage.Form) (*homepage.Payload, error) {
	return &homepage.Payload{
		Profile: &models.Profile{Name: "Rohan Mehta", Title: "Football Analyst", Email: "rohan@example.com"},
		Form:    form,
	}, nil
}

type countingSaver struct {
	mu    sync.Mutex
	saved []models.ContactSubmission
}

func (c *countingSaver) CreateSubmission(_ context.Context, sub models.ContactSubmission) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saved = append(c.saved, sub)
	return uuid.New(), nil
}

type stubAuth struct{}

func (stubAuth) Login(_ context.Context, email, password string) (string, error) {
	if email == "admin@example.com" && password == "s3cret" {
		return "token", nil
	}
	return "", auth.ErrInvalidCredentials
}

func newServer(t *testing.T, content *stubContent, saver *countingSaver) *echo.Echo {
	t.Helper()

	log := sl.NewDiscardLogger()
	routers := httprouters.NewRouter(log, content, submission.New(log, saver), stubHome{}, stubAuth{},
		dto.SiteResponse{SiteHeader: "Portfolio Admin"})

	renderer, err := httprouters.NewRenderer(func(p string) string { return "/media/" + p })
	require.NoError(t, err)

	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	e.Renderer = renderer
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test"))))

	e.GET("/", routers.Home)
	e.POST("/contact/", routers.SubmitContact)

	admin := e.Group("/admin/api/v1")
	admin.POST("/login", routers.Login)
	admin.GET("/site", routers.GetSite)
	admin.GET("/profile", routers.GetProfile)
	admin.POST("/profile", routers.CreateProfile)
	admin.POST("/profile/:field", routers.UploadAsset("profile", ""))
	admin.GET("/experiences", routers.ListExperiences)
	admin.GET("/experiences/:id", routers.GetExperience)
	admin.POST("/experiences/:id/:field", routers.UploadAsset("experiences", "id"))

	return e
}

func postForm(e *echo.Echo, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"name":          {"Jane Doe"},
		"email":         {"jane@example.com"},
		"phone":         {"+1-555-0100"},
		"subject":       {"Inquiry"},
		"message":       {"Hello"},
		"interest_type": {"general"},
		"website":       {""},
	}
}

func TestHome_Renders(t *testing.T) {
	e := newServer(t, &stubContent{}, &countingSaver{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Rohan Mehta")
	assert.Contains(t, body, `name="website"`)
	assert.Contains(t, body, "Academy Enrollment")
}

func TestSubmitContact_Accepted(t *testing.T) {
	saver := &countingSaver{}
	e := newServer(t, &stubContent{}, saver)

	rec := postForm(e, validForm())

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	require.Len(t, saver.saved, 1)
	assert.False(t, saver.saved[0].IsRead)
	assert.Equal(t, "Jane Doe", saver.saved[0].Name)

	// the acknowledgment is shown once on the next page load
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	home := httptest.NewRecorder()
	e.ServeHTTP(home, req)

	assert.Contains(t, home.Body.String(), "Thank you for your message!")
}

func TestSubmitContact_Spam(t *testing.T) {
	saver := &countingSaver{}
	e := newServer(t, &stubContent{}, saver)

	form := validForm()
	form.Set("website", "http://spam.example")
	rec := postForm(e, form)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, saver.saved)
}

func TestSubmitContact_Invalid(t *testing.T) {
	saver := &countingSaver{}
	e := newServer(t, &stubContent{}, saver)

	form := validForm()
	form.Set("interest_type", "academy")
	rec := postForm(e, form)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, httprouters.MessageInvalid)
	assert.Contains(t, body, submission.AgeGroupRequiredMessage)
	assert.Contains(t, body, `value="Jane Doe"`)
	assert.Empty(t, saver.saved)
}

func TestAdmin_Login(t *testing.T) {
	e := newServer(t, &stubContent{}, &countingSaver{})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"success", `{"email":"admin@example.com","password":"s3cret"}`, http.StatusOK},
		{"wrong password", `{"email":"admin@example.com","password":"nope"}`, http.StatusUnauthorized},
		{"missing email", `{"password":"nope"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/api/v1/login", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAdmin_Profile(t *testing.T) {
	content := &stubContent{}
	e := newServer(t, content, &countingSaver{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/v1/profile", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := `{"name":"Rohan","title":"Analyst","email":"rohan@example.com"}`

	req := httptest.NewRequest(http.MethodPost, "/admin/api/v1/profile", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	content.createErr = fmt.Errorf("content_service.CreateProfile: %w", storage.ErrSingletonViolation)
	req = httptest.NewRequest(http.MethodPost, "/admin/api/v1/profile", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "singleton_violation")
}

func TestAdmin_ListExperiencesFilter(t *testing.T) {
	content := &stubContent{experiences: []models.Experience{{Company: "A"}}}
	e := newServer(t, content, &countingSaver{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/v1/experiences?is_current=true&q=scout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, content.lastExpFilt.IsCurrent)
	assert.True(t, *content.lastExpFilt.IsCurrent)
	assert.Equal(t, "scout", content.lastExpFilt.Query)
	assert.Contains(t, rec.Body.String(), `"count":1`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/v1/experiences?is_current=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdmin_InvalidID(t *testing.T) {
	e := newServer(t, &stubContent{}, &countingSaver{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/v1/experiences/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartFile(t *testing.T, target, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	return req
}

func TestAdmin_UploadAsset(t *testing.T) {
	content := &stubContent{uploadedPath: "experiences/logo.png"}
	e := newServer(t, content, &countingSaver{})
	id := uuid.New()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartFile(t, "/admin/api/v1/experiences/"+id.String()+"/company_logo", "logo.png"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "experiences", content.uploadEntity)
	assert.Equal(t, id, content.uploadID)
	assert.Contains(t, rec.Body.String(), "experiences/logo.png")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, multipartFile(t, "/admin/api/v1/experiences/"+id.String()+"/nope", "logo.png"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	content.uploadErr = storage.ErrNotFound
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, multipartFile(t, "/admin/api/v1/profile/profile_photo", "me.png"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, uuid.Nil, content.uploadID)
}

func TestAdmin_Site(t *testing.T) {
	e := newServer(t, &stubContent{}, &countingSaver{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/v1/site", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Portfolio Admin")
}
