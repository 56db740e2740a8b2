package model

import "github.com/google/uuid"

// TokenManager issues and verifies API access tokens. The opaque database
// session stays the source of truth, the access token only names it.
type TokenManager interface {
	GenerateAccessToken(userID, sessionID uuid.UUID) (string, error)
	ValidateAccessToken(tokenString string) (AccessClaims, error)
}

// AccessClaims is the verified content of an access token.
type AccessClaims struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}
