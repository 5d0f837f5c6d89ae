package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManagerRoundTrip(t *testing.T) {
	manager := JWTManager{
		Secret:   []byte("test-secret"),
		Issuer:   "plantbook-test",
		TokenTTL: time.Hour,
	}

	token, err := manager.IssueToken("user-1", "a@x.com", "admin")
	require.NoError(t, err)

	claims, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "plantbook-test", claims.Issuer)
}

func TestJWTManagerRejectsWrongSecret(t *testing.T) {
	manager := JWTManager{Secret: []byte("test-secret"), TokenTTL: time.Hour}
	token, err := manager.IssueToken("user-1", "a@x.com", "user")
	require.NoError(t, err)

	other := JWTManager{Secret: []byte("another-secret")}
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManagerRejectsExpiredToken(t *testing.T) {
	manager := JWTManager{Secret: []byte("test-secret"), TokenTTL: -time.Minute}
	token, err := manager.IssueToken("user-1", "a@x.com", "user")
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManagerRejectsGarbage(t *testing.T) {
	manager := JWTManager{Secret: []byte("test-secret")}
	_, err := manager.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
