package jwt

import (
	"Recipe-Share/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestJWTService(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateTokenUser("8f7d", "alice")
	require.NoError(t, err)

	id, username, err := svc.GetUserByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "8f7d", id)
	assert.Equal(t, "alice", username)

	t.Run("wrong secret", func(t *testing.T) {
		_, _, err := NewJWTService("other").GetUserByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := svc.GetUserByToken("not.a.token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		old := &jwtService{
			secretKey: "secret",
			issuer:    "RECIPE-SHARE",
			now:       func() time.Time { return time.Now().Add(-2 * tokenLifetime) },
		}
		expired, err := old.GenerateTokenUser("8f7d", "alice")
		require.NoError(t, err)

		_, _, err = svc.GetUserByToken(expired)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})
}
