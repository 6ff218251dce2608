package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHS256Validator(t *testing.T) {
	_, err := NewHS256Validator("")
	require.Error(t, err)

	v, err := NewHS256Validator("my-secret")
	require.NoError(t, err)
	require.NotNil(t, v)
}

func TestHS256Validator_Validate(t *testing.T) {
	v, err := NewHS256Validator(testSecret)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid token with full claims", func(t *testing.T) {
		token := mintHS256(t, jwt.MapClaims{
			"sub":   "admin@catalyst.com",
			"iss":   "catalyst-hr",
			"aud":   "catalyst-api",
			"name":  "Ada Admin",
			"email": "admin@catalyst.com",
			"role":  "administrator",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		claims, err := v.Validate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "admin@catalyst.com", claims.Subject)
		assert.Equal(t, "catalyst-hr", claims.Issuer)
		assert.Equal(t, []string{"catalyst-api"}, claims.Audience)
		require.NotNil(t, claims.Name)
		assert.Equal(t, "Ada Admin", *claims.Name)
		require.NotNil(t, claims.Role)
		assert.Equal(t, "administrator", *claims.Role)
	})

	t.Run("audience list", func(t *testing.T) {
		token := mintHS256(t, jwt.MapClaims{
			"sub": "a@x.com",
			"aud": []string{"one", "two"},
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		claims, err := v.Validate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, claims.Audience)
		assert.Nil(t, claims.Role)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token := mintHS256(t, jwt.MapClaims{
			"sub": "a@x.com",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		_, err := v.Validate(ctx, token)
		require.Error(t, err)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "a@x.com",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("some-other-secret"))
		require.NoError(t, err)
		_, err = v.Validate(ctx, raw)
		require.Error(t, err)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": "a@x.com",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = v.Validate(ctx, raw)
		require.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := v.Validate(ctx, "not.a.jwt")
		require.Error(t, err)
	})
}
