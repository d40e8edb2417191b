package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"portfolio/internal/lib/jwt"
	"portfolio/internal/lib/logger/sl"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfigured      = errors.New("admin credentials are not configured")
)

// Auth authenticates the single site administrator against the configured
// email and bcrypt hash, and issues bearer tokens for the admin API.
type Auth struct {
	log          *slog.Logger
	email        string
	passwordHash []byte
	secret       string
	tokenTTL     time.Duration
}

func New(log *slog.Logger, email, passwordHash, secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		log:          log,
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
		secret:       secret,
		tokenTTL:     tokenTTL,
	}
}

func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	const op = "auth.Login"

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login admin")

	if a.email == "" || len(a.passwordHash) == 0 {
		log.Error("admin credentials missing from config")

		return "", fmt.Errorf("%s: %w", op, ErrNotConfigured)
	}

	if strings.ToLower(strings.TrimSpace(email)) != a.email {
		log.Warn("unknown admin email")

		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := jwt.NewToken(a.email, a.secret, a.tokenTTL)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged in successfully")

	return token, nil
}

// HashPassword produces the value stored in the password_hash setting.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth.HashPassword: %w", err)
	}

	return string(hash), nil
}
