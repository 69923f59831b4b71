package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherror "github.com/rneelams/TaskManager---backend/internal/errors"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("secret-key", 15, 14400)

	assert.NotNil(t, ts)
	assert.Equal(t, "secret-key", ts.Secret)
	assert.Equal(t, 15*time.Minute, ts.AccessTokenExpiry)
	assert.Equal(t, 14400*time.Minute, ts.RefreshTokenExpiry)
	assert.Equal(t, 15*time.Minute, ts.AccessTokenTTL())
	assert.Equal(t, 14400*time.Minute, ts.RefreshTokenTTL())
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 15, 14400)

	tests := []struct {
		name    string
		purpose Purpose
		ttl     time.Duration
	}{
		{name: "access token round trip", purpose: PurposeAccess, ttl: 15 * time.Minute},
		{name: "refresh token round trip", purpose: PurposeRefresh, ttl: 240 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ts.Issue("user-123", tt.purpose, tt.ttl)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := ts.Verify(token, tt.purpose)
			require.NoError(t, err)
			assert.Equal(t, "user-123", claims.UserID)
			assert.Equal(t, string(tt.purpose), claims.Purpose)
		})
	}
}

func TestTokenService_Issue_Unique(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 15, 14400)

	first, err := ts.Issue("user-123", PurposeRefresh, ts.RefreshTokenTTL())
	require.NoError(t, err)
	second, err := ts.Issue("user-123", PurposeRefresh, ts.RefreshTokenTTL())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenService_Verify_WrongPurpose(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 15, 14400)

	accessToken, err := ts.Issue("user-123", PurposeAccess, ts.AccessTokenTTL())
	require.NoError(t, err)
	refreshToken, err := ts.Issue("user-123", PurposeRefresh, ts.RefreshTokenTTL())
	require.NoError(t, err)

	_, err = ts.Verify(accessToken, PurposeRefresh)
	assert.ErrorIs(t, err, autherror.ErrWrongPurpose)

	_, err = ts.Verify(refreshToken, PurposeAccess)
	assert.ErrorIs(t, err, autherror.ErrWrongPurpose)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 15, 14400)

	// A valid signature with an expiry in the past must report expiry,
	// not a signature failure.
	token, err := ts.Issue("user-123", PurposeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ts.Verify(token, PurposeAccess)
	assert.ErrorIs(t, err, autherror.ErrTokenExpired)
}

func TestTokenService_Verify_InvalidSignature(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 15, 14400)
	other := NewTokenService("a-different-secret", 15, 14400)

	t.Run("token signed with another key", func(t *testing.T) {
		token, err := other.Issue("user-123", PurposeAccess, time.Minute)
		require.NoError(t, err)

		_, err = ts.Verify(token, PurposeAccess)
		assert.ErrorIs(t, err, autherror.ErrInvalidSignature)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := ts.Issue("user-123", PurposeAccess, time.Minute)
		require.NoError(t, err)

		_, err = ts.Verify(token+"x", PurposeAccess)
		assert.ErrorIs(t, err, autherror.ErrInvalidSignature)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ts.Verify("not-a-token", PurposeAccess)
		assert.ErrorIs(t, err, autherror.ErrInvalidSignature)
	})
}
