package errors

import (
	"errors"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionInvalid     = errors.New("refresh token has expired or the session is invalid")
	ErrInvalidSignature   = errors.New("token signature is invalid")
	ErrWrongPurpose       = errors.New("token purpose mismatch")
	ErrTokenExpired       = errors.New("token has expired")
	ErrListNotFound       = errors.New("list not found")
	ErrTaskNotFound       = errors.New("task not found")
)
