package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Minute)
	userID := uuid.New()
	sessionID := uuid.New()

	access, err := j.GenerateAccessToken(userID, sessionID)
	require.NoError(t, err)

	claims, err := j.ValidateAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, sessionID, claims.SessionID)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := NewJWT("secret", time.Minute)

	access, err := j.GenerateAccessToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	other := NewJWT("other-secret", time.Minute)
	_, err = other.ValidateAccessToken(access)
	require.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret", -time.Minute)

	access, err := j.GenerateAccessToken(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = j.ValidateAccessToken(access)
	require.Error(t, err)
}

func TestJWT_Garbage(t *testing.T) {
	j := NewJWT("secret", time.Minute)

	_, err := j.ValidateAccessToken("not-a-token")
	require.Error(t, err)
}

func TestJWT_UnsignedTokenRejected(t *testing.T) {
	j := NewJWT("secret", time.Minute)

	// alg=none header with empty signature
	_, err := j.ValidateAccessToken("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VyX2lkIjoiIn0.")
	require.Error(t, err)
}
