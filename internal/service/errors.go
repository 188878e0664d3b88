package service

import "errors"

var (
	ErrValidation = errors.New("missing or malformed required field")
	ErrConflict   = errors.New("email already registered")
	ErrNotFound   = errors.New("not found")
)
