package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	Configure("test-secret", 60)

	token, err := GenerateToken("user-123", "CREATOR")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "CREATOR", claims.Role)
}

func TestParseToken_Garbage(t *testing.T) {
	Configure("test-secret", 60)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_WrongSecret(t *testing.T) {
	Configure("secret-one", 60)
	token, err := GenerateToken("user-123", "ADMIN")
	require.NoError(t, err)

	Configure("secret-two", 60)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	Configure("test-secret", 60)
	jwtTTL = -time.Minute // force immediate expiry
	token, err := GenerateToken("user-123", "CREATOR")
	require.NoError(t, err)
	Configure("test-secret", 60)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
