package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, VerifyPassword("s3cret-pass", hash))
	assert.False(t, VerifyPassword("wrong-pass", hash))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	// salts are random, so the hashes differ while both still verify
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-input", first))
	assert.True(t, VerifyPassword("same-input", second))
}

func TestVerifyPasswordRejectsPlainComparison(t *testing.T) {
	// a stored hash is never a valid password for itself
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.False(t, VerifyPassword(hash, hash))
}
