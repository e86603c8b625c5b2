package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, expireAt, err := GenerateToken("secret", 42, "admin", 24)
	require.NoError(t, err)
	require.True(t, expireAt.After(time.Now()))

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, "admin", claims.Role)
}

func TestParseWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("secret", 1, "user", 24)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	require.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	token, _, err := GenerateToken("secret", 1, "user", -1)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expired")
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-token")
	require.Error(t, err)
}
