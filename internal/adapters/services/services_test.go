package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteful/internal/adapters/services"
	"noteful/internal/config"
)

func TestBcryptService(t *testing.T) {
	ctx := context.Background()
	svc := services.NewBcrypt(4)

	t.Run("hash then verify roundtrip", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "correct horse battery")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse battery", hash)

		valid, err := svc.Verify(ctx, "correct horse battery", hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("wrong password is a clean mismatch", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "correct horse battery")
		require.NoError(t, err)

		valid, err := svc.Verify(ctx, "wrong password", hash)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("rejects an empty password", func(t *testing.T) {
		_, err := svc.Hash(ctx, "")
		require.ErrorIs(t, err, services.ErrEmptyPassword)
	})

	t.Run("rejects a password over the bcrypt input limit", func(t *testing.T) {
		_, err := svc.Hash(ctx, strings.Repeat("a", 73))
		require.Error(t, err)
	})

	t.Run("a cost below the bcrypt minimum falls back to the default", func(t *testing.T) {
		fallback := services.NewBcrypt(0)

		hash, err := fallback.Hash(ctx, "long enough pw")
		require.NoError(t, err)

		valid, err := fallback.Verify(ctx, "long enough pw", hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})
}

func TestJWTService(t *testing.T) {
	ctx := context.Background()
	cfg := &config.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenTTL: "15m",
	}
	svc := services.NewJWT(cfg)

	t.Run("generate then validate returns the user id", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(ctx, "user-1", "walt")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := svc.ValidateAccessToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := services.NewJWT(&config.JWTConfig{SecretKey: "other-secret", AccessTokenTTL: "15m"})

		token, err := other.GenerateAccessToken(ctx, "user-1", "walt")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(ctx, token)
		require.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		claims := services.Claims{
			UserID:   "user-1",
			Username: "walt",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(ctx, expired)
		require.Error(t, err)
	})

	t.Run("rejects an unsigned token", func(t *testing.T) {
		claims := services.Claims{UserID: "user-1"}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(ctx, unsigned)
		require.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(ctx, "not.a.token")
		require.Error(t, err)
	})
}
