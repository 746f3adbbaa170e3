package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret-12345678901234567890123456789012")

	token, err := svc.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerify_Expired(t *testing.T) {
	svc := NewTokenService("test-secret-12345678901234567890123456789012")

	token, err := svc.Issue(7)
	assert.NoError(t, err)

	// Move the clock past the 1 hour window
	svc.now = func() time.Time { return time.Now().Add(TokenTTL + time.Minute) }

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongKey(t *testing.T) {
	issuer := NewTokenService("key-one-key-one-key-one-key-one!")
	verifier := NewTokenService("key-two-key-two-key-two-key-two!")

	token, err := issuer.Issue(7)
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret-12345678901234567890123456789012")

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
