package model

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken maps the unique-constraint violation on users.username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken maps the unique-constraint violation on users.email.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned for unknown username and wrong password
	// alike, so login failures do not reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
