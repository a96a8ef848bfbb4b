package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"noteful/internal/config"
	svc "noteful/internal/ports/services"
)

// JWT errors.
var (
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
	ErrInvalidToken     = errors.New("invalid token")
)

// Claims adapts the identity claim to the JWT library.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ServiceJWT implements the TokenService interface with HMAC-signed JWTs.
type ServiceJWT struct {
	secretKey      []byte
	accessTokenTTL time.Duration
}

// NewJWT creates a new JWT token service.
func NewJWT(cfg *config.JWTConfig) svc.TokenService {
	return &ServiceJWT{
		secretKey:      []byte(cfg.SecretKey),
		accessTokenTTL: cfg.GetAccessTokenTTL(),
	}
}

// GenerateAccessToken issues a signed access token for the user.
func (s *ServiceJWT) GenerateAccessToken(_ context.Context, userID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and verifies a token and returns the user id it
// carries.
func (s *ServiceJWT) ValidateAccessToken(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("error parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
