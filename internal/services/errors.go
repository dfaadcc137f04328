package services

import "errors"

var (
	// ErrUnauthenticated is returned when an operation requires a signed-in
	// profile and none is present.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidTransition is returned when an order status change skips a
	// step or tries to leave a terminal state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidCredentials is returned on login failure without revealing
	// whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
