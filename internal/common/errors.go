package common

import "errors"

var (
	// Storage errors.
	ErrorNotFound = errors.New("not found")

	// Token errors (malformed access token claims).
	ErrInvalidToken = errors.New("invalid token")
)
