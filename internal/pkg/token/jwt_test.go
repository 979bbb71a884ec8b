package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("secret", 30*24*time.Hour)

	tok, err := svc.GenerateToken("user-1", "ADMIN")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidate_WrongSecret(t *testing.T) {
	tok, err := NewService("secret-a", time.Hour).GenerateToken("user-1", "ADMIN")
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).ValidateToken(tok)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	svc := NewService("secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := svc.GenerateToken("user-1", "ADMIN")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidate_RejectsOtherAlgorithms(t *testing.T) {
	claims := CustomClaims{UserID: "user-1", Role: "ADMIN"}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewService("secret", time.Hour).ValidateToken(tok)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := NewService("secret", time.Hour).ValidateToken("not-a-jwt")
	assert.Error(t, err)
}
