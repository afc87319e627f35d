package accounts

import "errors"

// Sentinel errors returned by account and token services
var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidSignup       = errors.New("email must be valid and password at least 8 characters")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrMissingSubject      = errors.New("token has no subject")
	ErrSecretNotConfigured = errors.New("token secret not configured")
)
