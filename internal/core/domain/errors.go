package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAdminCodeMismatch  = errors.New("admin code mismatch")
	ErrForbidden          = errors.New("access forbidden")
	ErrDuplicateOrder     = errors.New("order already placed")
	ErrNoData             = errors.New("no data to export")
)
