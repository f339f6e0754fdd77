package db

import "errors"

// Domain-level database error sentinels.
var (
	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
