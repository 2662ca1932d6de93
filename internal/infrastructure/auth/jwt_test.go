package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cragbase/cragbase/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("secret", 30)

	token, err := svc.Generate(42, authorization.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), token.ExpiresIn)

	claims, err := svc.Verify(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, authorization.RoleEditor, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_Verify_Rejects(t *testing.T) {
	svc := NewJWTService("secret", 30)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTService("other", 30).Generate(1, authorization.RoleAdmin)
		require.NoError(t, err)
		_, err = svc.Verify(token.AccessToken)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewJWTService("secret", 1)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := old.Generate(1, authorization.RoleAdmin)
		require.NoError(t, err)
		_, err = svc.Verify(token.AccessToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := svc.Generate(1, authorization.UserRole("root"))
		require.NoError(t, err)
		_, err = svc.Verify(token.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.Error(t, err)
	})
}
