package devserver

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrNoUserFound        = errors.New("no user was found")
	ErrInsufficientHours  = errors.New("insufficient hours available")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrTokenInvalid       = errors.New("token is invalid")
)
