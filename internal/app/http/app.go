package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	jwtlib "portfolio/internal/lib/jwt"
	"portfolio/internal/lib/logger/sl"
	appmiddleware "portfolio/internal/middleware"
	"portfolio/internal/repository"
	httprouters "portfolio/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Options are the server settings taken from config.
type Options struct {
	Host          string
	Port          string
	Timeout       time.Duration
	SessionSecret string
	TokenSecret   string
	MediaURL      string
	MediaDir      string

	Limiter    repository.RateLimiter
	RateLimit  int
	RateWindow time.Duration
}

type Server struct {
	m       *http.ServeMux
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	opts    Options
}

func New(log *slog.Logger, opts Options, routers *httprouters.Routers, renderer echo.Renderer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = &CustomValidator{validator: validator.New()}
	e.Renderer = renderer

	if opts.Timeout > 0 {
		e.Server.ReadTimeout = opts.Timeout
		e.Server.WriteTimeout = opts.Timeout
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmiddleware.PrometheusMetrics)
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(opts.SessionSecret))))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogMethod:   true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		log.Info("Statsviz start with error", sl.Err(err))
	}

	return &Server{
		m:       mux,
		log:     log,
		e:       e,
		routers: routers,
		opts:    opts,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"), slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", slog.String("op", op))

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return net.JoinHostPort(s.opts.Host, s.opts.Port)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) adminAuth() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(s.opts.TokenSecret),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwtlib.AdminClaims)
		},
	})
}

func (s *Server) BuildRouters() {
	r := s.routers

	s.e.GET("/", r.Home)
	var contactMW []echo.MiddlewareFunc
	if s.opts.Limiter != nil {
		contactMW = append(contactMW,
			appmiddleware.ContactRateLimit(s.opts.Limiter, s.opts.RateLimit, s.opts.RateWindow, s.log))
	}
	s.e.POST("/contact/", r.SubmitContact, contactMW...)
	s.e.GET("/contact/", r.ContactPage)
	s.e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	if s.opts.MediaURL != "" && s.opts.MediaDir != "" {
		s.e.Static(s.opts.MediaURL, s.opts.MediaDir)
	}

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	api := s.e.Group("/admin/api/v1")
	api.POST("/login", r.Login)

	admin := api.Group("", s.adminAuth())
	{
		admin.GET("/site", r.GetSite)

		admin.GET("/profile", r.GetProfile)
		admin.POST("/profile", r.CreateProfile)
		admin.PATCH("/profile", r.UpdateProfile)
		admin.DELETE("/profile", r.DeleteProfile)
		admin.POST("/profile/:field", r.UploadAsset("profile", ""))

		admin.GET("/academy", r.GetAcademy)
		admin.POST("/academy", r.CreateAcademy)
		admin.PATCH("/academy", r.UpdateAcademy)
		admin.DELETE("/academy", r.DeleteAcademy)
		admin.GET("/academy/gallery", r.ListGalleryImages)
		admin.POST("/academy/gallery", r.AddGalleryImage)
		admin.PATCH("/academy/gallery/:id", r.UpdateGalleryImage)
		admin.DELETE("/academy/gallery/:id", r.DeleteGalleryImage)
		admin.POST("/academy/gallery/:id/:field", r.UploadAsset("gallery", "id"))
		admin.POST("/academy/:field", r.UploadAsset("academy", ""))

		admin.GET("/experiences", r.ListExperiences)
		admin.POST("/experiences", r.CreateExperience)
		admin.GET("/experiences/:id", r.GetExperience)
		admin.PATCH("/experiences/:id", r.UpdateExperience)
		admin.DELETE("/experiences/:id", r.DeleteExperience)
		admin.POST("/experiences/:id/:field", r.UploadAsset("experiences", "id"))

		admin.GET("/certifications", r.ListCertifications)
		admin.POST("/certifications", r.CreateCertification)
		admin.GET("/certifications/:id", r.GetCertification)
		admin.PATCH("/certifications/:id", r.UpdateCertification)
		admin.DELETE("/certifications/:id", r.DeleteCertification)
		admin.POST("/certifications/:id/:field", r.UploadAsset("certifications", "id"))

		admin.GET("/companies", r.ListCompanyLogos)
		admin.POST("/companies", r.CreateCompanyLogo)
		admin.GET("/companies/:id", r.GetCompanyLogo)
		admin.PATCH("/companies/:id", r.UpdateCompanyLogo)
		admin.DELETE("/companies/:id", r.DeleteCompanyLogo)
		admin.POST("/companies/:id/:field", r.UploadAsset("companies", "id"))

		admin.GET("/submissions", r.ListSubmissions)
		admin.GET("/submissions/:id", r.GetSubmission)
		admin.PATCH("/submissions/:id", r.UpdateSubmission)
		admin.DELETE("/submissions/:id", r.DeleteSubmission)

		admin.GET("/testimonials", r.ListTestimonials)
		admin.POST("/testimonials", r.CreateTestimonial)
		admin.GET("/testimonials/:id", r.GetTestimonial)
		admin.PATCH("/testimonials/:id", r.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", r.DeleteTestimonial)
		admin.POST("/testimonials/:id/:field", r.UploadAsset("testimonials", "id"))

		admin.GET("/projects", r.ListProjects)
		admin.POST("/projects", r.CreateProject)
		admin.GET("/projects/:id", r.GetProject)
		admin.PATCH("/projects/:id", r.UpdateProject)
		admin.DELETE("/projects/:id", r.DeleteProject)
		admin.POST("/projects/:id/images", r.AddProjectImage)
		admin.PATCH("/projects/:id/images/:image_id", r.UpdateProjectImage)
		admin.DELETE("/projects/:id/images/:image_id", r.DeleteProjectImage)
		admin.POST("/projects/:id/images/:image_id/:field", r.UploadAsset("project_images", "image_id"))
		admin.POST("/projects/:id/:field", r.UploadAsset("projects", "id"))

		admin.GET("/action-photos", r.ListActionPhotos)
		admin.POST("/action-photos", r.CreateActionPhoto)
		admin.GET("/action-photos/:id", r.GetActionPhoto)
		admin.PATCH("/action-photos/:id", r.UpdateActionPhoto)
		admin.DELETE("/action-photos/:id", r.DeleteActionPhoto)
		admin.POST("/action-photos/:id/:field", r.UploadAsset("action-photos", "id"))
	}
}
