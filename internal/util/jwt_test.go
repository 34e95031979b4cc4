package util

import (
	"strings"
	"testing"
	"time"

	"quizz_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:    "test-secret",
		Algorithm: "HS256",
		TTL:       30 * time.Minute,
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateJWT("johndoe", cfg, cfg.TTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ParseJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", subject)
}

func TestParseJWTExpired(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateJWT("johndoe", cfg, -time.Second)
	require.NoError(t, err)

	_, err = ParseJWT(token, cfg)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestParseJWTWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateJWT("johndoe", cfg, cfg.TTL)
	require.NoError(t, err)

	other := cfg
	other.Secret = "another-secret"
	_, err = ParseJWT(token, other)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestParseJWTTamperedPayload(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateJWT("johndoe", cfg, cfg.TTL)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	// flip the payload, keep the original signature
	parts[1] = "eyJzdWIiOiJzb21lYm9keS1lbHNlIn0"
	_, err = ParseJWT(strings.Join(parts, "."), cfg)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestParseJWTGarbage(t *testing.T) {
	cfg := testJWTConfig()

	_, err := ParseJWT("not-a-token", cfg)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestParseJWTAlgorithmMismatch(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateJWT("johndoe", cfg, cfg.TTL)
	require.NoError(t, err)

	other := cfg
	other.Algorithm = "HS512"
	_, err = ParseJWT(token, other)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGenerateJWTUnknownAlgorithm(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Algorithm = "RS256"

	_, err := GenerateJWT("johndoe", cfg, cfg.TTL)
	assert.Error(t, err)
}
