package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, "alice@example.com", time.Hour)
	require.NoError(t, err)

	subject, err := SubjectFromToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestTokenExpired(t *testing.T) {
	token, err := IssueToken(testSecret, "alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = SubjectFromToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, "alice@example.com", time.Hour)
	require.NoError(t, err)

	_, err = SubjectFromToken([]byte("other-secret"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMissingSubject(t *testing.T) {
	token, err := IssueToken(testSecret, "", time.Hour)
	require.NoError(t, err)

	_, err = SubjectFromToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := SubjectFromToken(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
