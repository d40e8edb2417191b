package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims is what an admin token carries. The admin route group parses
// tokens into this type.
type AdminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewToken(email, secret string, duration time.Duration) (string, error) {
	now := time.Now()

	claims := AdminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry.
func ParseToken(tokenString, secret string) (*AdminClaims, error) {
	claims := &AdminClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	return claims, nil
}
