package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/require"
)

func TestBcryptCodeHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptCodeHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	require.NoError(t, hasher.Compare(hash, "123456"))
	require.Error(t, hasher.Compare(hash, "654321"))
}

func TestBcryptCodeHasher_HashesDiffer(t *testing.T) {
	hasher := NewBcryptCodeHasher(bcrypt.MinCost)

	first, err := hasher.Hash("123456")
	require.NoError(t, err)
	second, err := hasher.Hash("123456")
	require.NoError(t, err)

	// bcrypt salts every hash, so equal inputs produce distinct hashes.
	require.NotEqual(t, first, second)
}
