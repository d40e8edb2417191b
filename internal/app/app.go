package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "portfolio/internal/app/http"
	"portfolio/internal/config"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/repository"
	"portfolio/internal/services/auth"
	services "portfolio/internal/services/content_service"
	"portfolio/internal/services/homepage"
	"portfolio/internal/services/submission"
	filestorage "portfolio/internal/storage/filestorage"
	"portfolio/internal/storage/postgresql"
	redisapp "portfolio/internal/storage/redis"
	httprouters "portfolio/internal/transport/http"
	"portfolio/internal/transport/http/dto"
)

type App struct {
	HTTPServer *httpapp.Server
	Content    *services.ContentService

	log     *slog.Logger
	storage *postgresql.Storage
	redis   *redisapp.Client
}

// New connects storage, applies migrations and wires the services. It panics
// when a required backend is unreachable.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) *App {
	a, err := build(ctx, log, cfg)
	if err != nil {
		panic(err)
	}

	return a
}

func build(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	if err := postgresql.Migrate(cfg.DSN); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := postgresql.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	files, err := filestorage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL, cfg.FileStorage.MaxSize)
	if err != nil {
		db.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	repo := repository.NewRepository(db.DB)

	home := homepage.New(log, nil, cfg.Contact.CacheTTL)
	content := services.NewContentService(log, services.FromRepository(repo), files, home)
	home.SetContent(content)

	submissions := submission.New(log, repo.Submission)
	authService := auth.New(log, cfg.Auth.AdminEmail, cfg.Auth.PasswordHash, cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	rdb := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)

	var limiter repository.RateLimiter
	if err := rdb.HealthCheck(ctx); err != nil {
		log.Warn("redis unavailable, contact rate limiting disabled", sl.Err(err))
	} else {
		limiter = repository.NewRedisRateLimiter(rdb)
	}

	routers := httprouters.NewRouter(log, content, submissions, home, authService, dto.SiteResponse{
		SiteHeader: cfg.Admin.SiteHeader,
		SiteTitle:  cfg.Admin.SiteTitle,
		IndexTitle: cfg.Admin.IndexTitle,
	})

	renderer, err := httprouters.NewRenderer(files.URL)
	if err != nil {
		db.Stop()
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	server := httpapp.New(log, httpapp.Options{
		Host:          cfg.HTTP.Host,
		Port:          cfg.HTTP.Port,
		Timeout:       cfg.HTTP.Timeout,
		SessionSecret: cfg.HTTP.SessionSecret,
		TokenSecret:   cfg.Auth.TokenSecret,
		MediaURL:      files.BaseURL(),
		MediaDir:      files.GetBaseDir(),
		Limiter:       limiter,
		RateLimit:     cfg.Contact.RateLimit,
		RateWindow:    cfg.Contact.RateWindow,
	}, routers, renderer)

	return &App{
		HTTPServer: server,
		Content:    content,
		log:        log,
		storage:    db,
		redis:      rdb,
	}, nil
}

// Stop releases the backends. The HTTP server is stopped separately.
func (a *App) Stop() {
	if err := a.redis.Close(); err != nil {
		a.log.Warn("failed to close redis", sl.Err(err))
	}
	a.storage.Stop()
}
