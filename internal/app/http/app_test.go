package httpapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jwtlib "portfolio/internal/lib/jwt"
	"portfolio/internal/lib/logger/sl"
	httprouters "portfolio/internal/transport/http"
	"portfolio/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type denyAll struct{}

func (denyAll) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return false, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	log := sl.NewDiscardLogger()
	routers := httprouters.NewRouter(log, nil, nil, nil, nil, dto.SiteResponse{SiteHeader: "Portfolio Admin"})
	renderer, err := httprouters.NewRenderer(func(p string) string { return "/media/" + p })
	require.NoError(t, err)

	s := New(log, Options{
		Port:          "0",
		SessionSecret: "session",
		TokenSecret:   "token-secret",
		Limiter:       denyAll{},
		RateLimit:     1,
		RateWindow:    time.Minute,
	}, routers, renderer)
	s.BuildRouters()

	return s
}

func TestAdminRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/v1/site", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := jwtlib.NewToken("admin@example.com", "token-secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/site", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Portfolio Admin")
}

func TestAdminRejectsForeignToken(t *testing.T) {
	s := newTestServer(t)

	token, err := jwtlib.NewToken("admin@example.com", "other-secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/site", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestContactRateLimited(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestContactGetRedirectsHome(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact/", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
