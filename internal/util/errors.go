package util

import "errors"

var (
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInactiveAccount    = errors.New("inactive account")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameTaken      = errors.New("username already taken")
)
