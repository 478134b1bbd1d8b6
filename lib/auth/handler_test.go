package authhandler

import (
	"ets-backend/config"
	"ets-backend/db/dbtest"
	usersprovider "ets-backend/lib/users"
	authutils "ets-backend/lib/utils/auth-utils"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSession(t *testing.T) {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "session-secret"
	conf.Auth.JWTExpireInSec = 60
	conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf = conf

	users := usersprovider.NewInstance(dbtest.NewSeeded(t), bcrypt.MinCost, nil)
	handler := NewInstance(users)

	t.Run("login issues tokens check", func(t *testing.T) {
		session, err := handler.Login("manager@test.com", "password123")
		require.NoError(t, err)
		require.Equal(t, "2", session.User.ID)
		claims, err := authutils.Parse("session-secret", session.Token)
		require.NoError(t, err)
		require.Equal(t, "2", claims["sub"])
		require.Equal(t, "Manager", claims["role"])
		require.Equal(t, "comp-1", claims["company"])

		tokens, err := handler.RefreshToken(session.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, tokens.Token)
	})
	t.Run("access token cannot refresh check", func(t *testing.T) {
		session, err := handler.Login("manager@test.com", "password123")
		require.NoError(t, err)
		_, err = handler.RefreshToken(session.Token)
		require.Error(t, err)
	})
	t.Run("failed login check", func(t *testing.T) {
		_, err := handler.Login("manager@test.com", "nope")
		require.ErrorIs(t, err, usersprovider.ErrInvalidCredentials)
	})
	t.Run("me check", func(t *testing.T) {
		user, err := handler.Me("1")
		require.NoError(t, err)
		require.Equal(t, "admin@test.com", user.Email)
	})
}
