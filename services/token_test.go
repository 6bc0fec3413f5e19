package services

import (
	"os"
	"testing"
	"time"

	"feathernote/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-1")
	require.NoError(t, err)

	userID, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken("user-1")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	token, err := GenerateToken("user-1")
	require.NoError(t, err)

	expiry := TokenExpiry(token)
	wantExpiry := time.Now().Add(time.Duration(utils.JWTExpirationTime) * time.Second)
	assert.WithinDuration(t, wantExpiry, expiry, 5*time.Second)

	// Garbage tokens still get a sane default window.
	fallback := TokenExpiry("garbage")
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), fallback, 5*time.Second)
}
