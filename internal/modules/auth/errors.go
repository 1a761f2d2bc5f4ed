package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long")
	ErrUnknownRole        = errors.New("role must be guest or host")
)
