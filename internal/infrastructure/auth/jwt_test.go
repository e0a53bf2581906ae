package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 2*time.Hour)

	token, expiresIn, err := svc.Issue("session-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7200), expiresIn)

	sessionID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)
}

func TestJWTService_ZeroTTLNeverExpires(t *testing.T) {
	svc := NewJWTService("test-secret", 0)

	token, expiresIn, err := svc.Issue("session-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), expiresIn)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	token, _, err := NewJWTService("other-secret", time.Hour).Issue("session-1")
	require.NoError(t, err)

	_, err = NewJWTService("test-secret", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	claims := &Claims{
		SessionID: "session-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsEmptySession(t *testing.T) {
	_, _, err := NewJWTService("test-secret", time.Hour).Issue("")
	assert.Error(t, err)
}
