package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/metrics"
	"portfolio/internal/repository"

	"github.com/labstack/echo/v4"
)

// ContactRateLimit caps contact form posts per client IP. A limiter failure
// lets the request through.
func ContactRateLimit(limiter repository.RateLimiter, limit int, window time.Duration, log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodPost || limit <= 0 {
				return next(c)
			}

			ip := c.RealIP()
			ok, err := limiter.Allow(c.Request().Context(), ip, limit, window)
			if err != nil {
				log.Warn("rate limiter unavailable", slog.String("ip", ip), sl.Err(err))
				return next(c)
			}

			if !ok {
				metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeRateLimited).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many submissions, please try again later")
			}

			return next(c)
		}
	}
}
