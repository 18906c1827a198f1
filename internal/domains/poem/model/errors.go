package model

import "errors"

var (
	ErrPoemNotFound = errors.New("poem not found")

	// ErrInvalidCursor marks a cursor that is not a poem id.
	ErrInvalidCursor = errors.New("invalid cursor")

	ErrEmptyContent = errors.New("content must not be empty")
)
