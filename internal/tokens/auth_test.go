package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountJWT_RoundTrip(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateAccountJWT(42, "alice", time.Hour, key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, validateErr := ValidateAccountJWT(token, key)
	require.NoError(t, validateErr)

	assert.EqualValues(t, 42, claims.AccountID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice", claims.Subject)
}

func TestValidateAccountJWT_WrongKey(t *testing.T) {
	token, err := GenerateAccountJWT(1, "alice", time.Hour, []byte("key-one"))
	require.NoError(t, err)

	_, validateErr := ValidateAccountJWT(token, []byte("key-two"))
	assert.Error(t, validateErr)
}

func TestValidateAccountJWT_Expired(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateAccountJWT(1, "alice", -time.Minute, key)
	require.NoError(t, err)

	_, validateErr := ValidateAccountJWT(token, key)
	assert.ErrorIs(t, validateErr, ErrTokenExpired)
}

func TestValidateAccountJWT_Garbage(t *testing.T) {
	_, err := ValidateAccountJWT("not-a-token", []byte("key"))
	assert.Error(t, err)
}
