package store

import "errors"

var (
	// ErrNotFound means the referenced event, poll, or question does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOption means a vote named an option the poll does not have.
	ErrInvalidOption = errors.New("invalid option")
)
