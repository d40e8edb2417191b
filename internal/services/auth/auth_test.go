package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"portfolio/internal/lib/jwt"
	"portfolio/internal/lib/logger/sl"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T) *Auth {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return New(sl.NewDiscardLogger(), "Admin@Example.com", string(hash), "token-secret", time.Hour)
}

func TestLogin(t *testing.T) {
	a := newAuth(t)

	t.Run("success", func(t *testing.T) {
		token, err := a.Login(context.Background(), "admin@example.com ", "s3cret")
		require.NoError(t, err)

		claims, err := jwt.ParseToken(token, "token-secret")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := a.Login(context.Background(), "admin@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := a.Login(context.Background(), "someone@example.com", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

const passDefaultLen = 10

func TestLogin_HappyPath(t *testing.T) {
	email := gofakeit.Email()
	pass := randomFakePassword()
	ttl := time.Hour

	hash, err := HashPassword(pass)
	require.NoError(t, err)

	a := New(sl.NewDiscardLogger(), email, hash, "test-secret", ttl)

	loginTime := time.Now()
	token, err := a.Login(context.Background(), email, pass)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(email), claims.Email)

	const deltaSeconds = 1

	// exp lands one ttl after login
	assert.InDelta(t, loginTime.Add(ttl).Unix(), claims.ExpiresAt.Unix(), deltaSeconds)
}

func randomFakePassword() string {
	return gofakeit.Password(true, true, true, true, false, passDefaultLen)
}

func TestLogin_NotConfigured(t *testing.T) {
	a := New(sl.NewDiscardLogger(), "", "", "secret", time.Hour)

	_, err := a.Login(context.Background(), "admin@example.com", "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")))
}
