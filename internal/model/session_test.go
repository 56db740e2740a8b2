package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()

	assert.False(t, Session{Expires: now.Add(time.Minute)}.Expired(now))
	assert.True(t, Session{Expires: now.Add(-time.Minute)}.Expired(now))
	// expiry instant counts as expired
	assert.True(t, Session{Expires: now}.Expired(now))
}

func TestVerificationToken_Expired(t *testing.T) {
	now := time.Now()

	assert.False(t, VerificationToken{Expires: now.Add(time.Minute)}.Expired(now))
	assert.True(t, VerificationToken{Expires: now.Add(-time.Minute)}.Expired(now))
}
