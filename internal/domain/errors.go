package domain

import "errors"

var (
	ErrSubfedditNotFound = errors.New("subfeddit not found")
)
