package model

import "errors"

var (
	// Employee related errors
	ErrEmployeeNotFound = errors.New("employee not found")

	// User related errors
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")

	// Auth related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenNotFound      = errors.New("token not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
