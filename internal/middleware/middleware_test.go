package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLimiter struct {
	allow bool
	err   error
	calls int
}

func (s *stubLimiter) Allow(_ context.Context, _ string, _ int, _ time.Duration) (bool, error) {
	s.calls++
	return s.allow, s.err
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestContactRateLimit(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name       string
		method     string
		limiter    *stubLimiter
		wantStatus int
		wantCalls  int
	}{
		{"allowed", http.MethodPost, &stubLimiter{allow: true}, http.StatusOK, 1},
		{"blocked", http.MethodPost, &stubLimiter{allow: false}, http.StatusTooManyRequests, 1},
		{"limiter down fails open", http.MethodPost, &stubLimiter{err: errors.New("down")}, http.StatusOK, 1},
		{"GET not limited", http.MethodGet, &stubLimiter{allow: false}, http.StatusOK, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/contact/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := middleware.ContactRateLimit(tt.limiter, 5, time.Minute, sl.NewDiscardLogger())(okHandler)
			err := h(c)

			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				var he *echo.HTTPError
				require.ErrorAs(t, err, &he)
				assert.Equal(t, tt.wantStatus, he.Code)
			}
			assert.Equal(t, tt.wantCalls, tt.limiter.calls)
		})
	}
}

func TestPrometheusMetrics(t *testing.T) {
	e := echo.New()
	e.Use(middleware.PrometheusMetrics)
	e.GET("/ping", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
