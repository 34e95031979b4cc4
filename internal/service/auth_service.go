package service

import (
	"errors"

	"quizz_backend/internal/config"
	"quizz_backend/internal/model"
	"quizz_backend/internal/repository"
	"quizz_backend/internal/util"
	"quizz_backend/pkg/security"

	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User, password string) error {
	_, err := s.UserRepo.FindByUsername(user.Username)
	if err == nil {
		return util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return err
	}
	user.HashedPassword = hashed
	return s.UserRepo.Create(user)
}

// Authenticate verifies the credentials and issues a bearer token. An unknown
// username and a wrong password are the same error on purpose.
func (s *AuthService) Authenticate(username, password string) (string, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", err
	}

	if !security.VerifyPassword(password, user.HashedPassword) {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateJWT(user.Username, s.Cfg.JWT, s.Cfg.JWT.TTL)
}

// ResolveToken is the single authorization choke point: token → subject →
// user → active check. The account state is read from the store on every
// call, never trusted from the token.
func (s *AuthService) ResolveToken(tokenString string) (*model.User, error) {
	username, err := util.ParseJWT(tokenString, s.Cfg.JWT)
	if err != nil {
		return nil, util.ErrUnauthorized
	}

	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnauthorized
		}
		return nil, err
	}

	if user.Disabled {
		return nil, util.ErrInactiveAccount
	}

	return user, nil
}
