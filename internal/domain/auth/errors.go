package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidToken       = errors.New("Invalid or missing token")
	ErrTokenExpired       = errors.New("Token expired")
)
