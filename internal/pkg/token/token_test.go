package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/horecaseek-service/internal/pkg/token"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	at, err := token.NewAccessToken("test-secret", "user-123", 15*time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, at.Token)

	sub, err := token.ParseAccessToken("test-secret", at.Token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	at, err := token.NewAccessToken("secret-a", "user-123", 15*time.Minute)
	assert.NoError(t, err)

	_, err = token.ParseAccessToken("secret-b", at.Token)
	assert.Error(t, err)
}

func TestParseAccessToken_Expired(t *testing.T) {
	at, err := token.NewAccessToken("test-secret", "user-123", -1*time.Minute)
	assert.NoError(t, err)

	_, err = token.ParseAccessToken("test-secret", at.Token)
	assert.Error(t, err)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	_, err := token.ParseAccessToken("test-secret", "not-a-jwt")
	assert.Error(t, err)
}

func TestRefreshTokenAndHash(t *testing.T) {
	rt, err := token.NewRefreshToken(24 * time.Hour)
	assert.NoError(t, err)
	assert.Len(t, rt.Raw, 96) // 48 random bytes hex-encoded
	assert.True(t, rt.Exp.After(time.Now()))

	h1 := token.HashRaw(rt.Raw)
	h2 := token.HashRaw(rt.Raw)
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, rt.Raw, h1)

	other, err := token.NewRefreshToken(24 * time.Hour)
	assert.NoError(t, err)
	assert.NotEqual(t, token.HashRaw(other.Raw), h1)
}
