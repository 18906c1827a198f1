package model

import "errors"

var (
	ErrPoemNotFound = errors.New("poem not found")
	ErrUserNotFound = errors.New("user not found")

	ErrValueOutOfRange = errors.New("value must be between 0 and 10")
)
