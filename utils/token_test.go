package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenAuth_RoundTrip(t *testing.T) {
	t.Parallel()

	auth := NewTokenAuth("test-secret")
	userID := "64f1c0ffee00000000000001"

	token, err := auth.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := auth.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenAuth_ExpiryClaim(t *testing.T) {
	t.Parallel()

	auth := NewTokenAuth("test-secret")
	token, err := auth.Generate("abc")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	require.NotNil(t, exp)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), exp.Time, time.Minute)
}

func TestTokenAuth_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	token, err := NewTokenAuth("right-secret").Generate("abc")
	require.NoError(t, err)

	_, err = NewTokenAuth("wrong-secret").Validate(token)
	assert.Error(t, err)
}

func TestTokenAuth_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokenAuth("").Generate("abc")
	assert.Error(t, err)
}

func TestTokenAuth_GarbageToken(t *testing.T) {
	t.Parallel()

	_, err := NewTokenAuth("test-secret").Validate("not.a.token")
	assert.Error(t, err)
}
