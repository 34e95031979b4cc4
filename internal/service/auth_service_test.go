package service

import (
	"testing"
	"time"

	"quizz_backend/internal/config"
	"quizz_backend/internal/model"
	"quizz_backend/internal/repository"
	"quizz_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:    "test-secret",
			Algorithm: "HS256",
			TTL:       30 * time.Minute,
		},
	}
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func registerUser(t *testing.T, s *AuthService, username, password string) *model.User {
	t.Helper()

	user := &model.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, s.Register(user, password))
	return user
}

func TestAuthenticateRoundTrip(t *testing.T) {
	s := newAuthService(t)
	registerUser(t, s, "johndoe", "s3cret-pass")

	token, err := s.Authenticate("johndoe", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := s.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", user.Username)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	s := newAuthService(t)
	registerUser(t, s, "johndoe", "s3cret-pass")

	_, unknownErr := s.Authenticate("nobody", "s3cret-pass")
	_, wrongPassErr := s.Authenticate("johndoe", "wrong-pass")

	assert.ErrorIs(t, unknownErr, util.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, util.ErrInvalidCredentials)
	// same sentinel, so the transport layer cannot leak which one happened
	assert.Equal(t, unknownErr, wrongPassErr)
}

func TestResolveTokenDisabledUser(t *testing.T) {
	s := newAuthService(t)
	user := registerUser(t, s, "johndoe", "s3cret-pass")

	// disable after a token was issued; the gate must re-check the store
	token, err := s.Authenticate("johndoe", "s3cret-pass")
	require.NoError(t, err)

	user.Disabled = true
	require.NoError(t, s.UserRepo.DB.Save(user).Error)

	_, err = s.ResolveToken(token)
	assert.ErrorIs(t, err, util.ErrInactiveAccount)
}

func TestResolveTokenUnknownSubject(t *testing.T) {
	s := newAuthService(t)

	token, err := util.GenerateJWT("ghost", s.Cfg.JWT, s.Cfg.JWT.TTL)
	require.NoError(t, err)

	_, err = s.ResolveToken(token)
	assert.ErrorIs(t, err, util.ErrUnauthorized)
}

func TestResolveTokenGarbage(t *testing.T) {
	s := newAuthService(t)

	_, err := s.ResolveToken("not-a-token")
	assert.ErrorIs(t, err, util.ErrUnauthorized)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newAuthService(t)
	registerUser(t, s, "johndoe", "s3cret-pass")

	err := s.Register(&model.User{Username: "johndoe"}, "other-pass")
	assert.ErrorIs(t, err, util.ErrUsernameTaken)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	s := newAuthService(t)
	registerUser(t, s, "johndoe", "s3cret-pass")

	stored, err := s.UserRepo.FindByUsername("johndoe")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.HashedPassword)
	assert.NotEqual(t, "s3cret-pass", stored.HashedPassword)
}
