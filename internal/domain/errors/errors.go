package errors

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidOrder  = errors.New("invalid order")
	ErrInvalidStatus = errors.New("invalid status")
)
