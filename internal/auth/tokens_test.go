package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", time.Minute)

	token, err := ts.Generate("user-1", "user@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)

	token, err := ts.Generate("user-1", "user@example.com", "customer")
	require.NoError(t, err)

	_, err = ts.Validate(token)
	assert.Error(t, err)
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Minute).Generate("user-1", "", "")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Minute).Validate(token)
	assert.Error(t, err)
}

func TestSessionContext(t *testing.T) {
	ctx := context.Background()

	_, ok := SessionFrom(ctx)
	assert.False(t, ok)

	ctx = WithSession(ctx, Session{UserID: "user-1", Role: "admin"})
	s, ok := SessionFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, "admin", s.Role)
}
