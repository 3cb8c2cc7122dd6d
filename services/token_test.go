package services

import (
	"testing"
	"time"

	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)

	token, err := tokens.GenerateToken(&models.User{ID: "u1", Role: 1})
	require.NoError(t, err)

	id, role, err := tokens.GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
	assert.Equal(t, 1, role)
}

func TestTokenService_Rejects(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)

	other, err := NewTokenService("other", time.Hour).GenerateToken(&models.User{ID: "u1"})
	require.NoError(t, err)
	_, _, err = tokens.GetUserIDFromToken(other)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidToken))

	expired := NewTokenService("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.GenerateToken(&models.User{ID: "u1"})
	require.NoError(t, err)
	_, _, err = tokens.GetUserIDFromToken(old)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidToken))

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserInfo: UserInfo{UserId: "u1"}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, _, err = tokens.GetUserIDFromToken(unsigned)
	assert.Error(t, err)

	_, _, err = tokens.GetUserIDFromToken("garbage")
	assert.Error(t, err)
}
