package auth

import "errors"

var (
	// ErrAdminNotFound is returned when no admin row matches the username.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrInvalidPassword is returned when the password does not match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrAdminExists is returned when creating an admin with a username that is already taken.
	ErrAdminExists = errors.New("admin already exists")
)
