package authutils

import (
	"ets-backend/config"
	"ets-backend/models"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 60
	conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf = conf
}

func TestTokens(t *testing.T) {
	initTestConfig()
	t.Run("access token claims check", func(t *testing.T) {
		token, err := GetToken("1", "Alice Admin", "comp-1", models.AdminRole)
		require.NoError(t, err)
		claims, err := Parse("test-secret", token)
		require.NoError(t, err)
		require.Equal(t, "1", claims["sub"])
		require.Equal(t, "Admin", claims["role"])
		require.Equal(t, "comp-1", claims["company"])
		require.Equal(t, true, claims["admin"])
	})
	t.Run("refresh token check", func(t *testing.T) {
		token, err := GetRefreshToken("2", "Bob")
		require.NoError(t, err)
		userID, err := ParseRefreshToken(token)
		require.NoError(t, err)
		require.Equal(t, "2", userID)
	})
	t.Run("access token is not a refresh token check", func(t *testing.T) {
		token, err := GetToken("1", "Alice Admin", "comp-1", models.AdminRole)
		require.NoError(t, err)
		_, err = ParseRefreshToken(token)
		require.Error(t, err)
	})
	t.Run("wrong secret check", func(t *testing.T) {
		token, err := Sign("other", jwt.MapClaims{"sub": "1"}, time.Minute)
		require.NoError(t, err)
		_, err = Parse("test-secret", token)
		require.Error(t, err)
	})
	t.Run("expired token check", func(t *testing.T) {
		token, err := Sign("test-secret", jwt.MapClaims{"sub": "1"}, -time.Minute)
		require.NoError(t, err)
		_, err = Parse("test-secret", token)
		require.Error(t, err)
	})
}
