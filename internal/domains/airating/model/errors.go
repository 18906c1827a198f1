package model

import "errors"

var (
	ErrPoemNotFound     = errors.New("poem not found")
	ErrAIRatingNotFound = errors.New("ai rating not found")
)
