package domain

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidTaskInput    = errors.New("invalid task input")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrDuplicateUsername   = errors.New("username already taken")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrNoSession           = errors.New("no active session")
	ErrForbidden           = errors.New("forbidden")
)
