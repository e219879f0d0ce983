package usecases

import "errors"

var (
	// ErrUsernameTaken is returned by Register when the username already
	// exists (case-sensitive exact match).
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidInput is returned for malformed or out-of-range form values.
	ErrInvalidInput = errors.New("invalid input")
)
