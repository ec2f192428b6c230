package service

import "errors"

var (
	// ErrUserNotFound means no account matched the given username or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword means the account exists but the password did not match.
	ErrWrongPassword = errors.New("wrong password")
	// ErrUserExists means the username or email is already taken.
	ErrUserExists = errors.New("username or email already in use")
)
