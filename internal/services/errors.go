package services

import "errors"

// Error variables
var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrConcurrentUpdate   = errors.New("resource was modified concurrently")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)
