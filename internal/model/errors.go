package model

import "errors"

var (
	// Account related errors
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account already registered")
	ErrBadCredentials   = errors.New("bad credentials")

	// Token related errors. Malformed payloads, bad signatures and expiry
	// all collapse into ErrInvalidToken so callers cannot tell them apart.
	ErrInvalidToken = errors.New("invalid token")
	ErrUnauthorized = errors.New("unauthorized")

	// Resource related errors
	ErrFoxNotFound     = errors.New("fox not found")
	ErrDogNotFound     = errors.New("dog not found")
	ErrExampleNotFound = errors.New("example not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
