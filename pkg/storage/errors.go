package storage

import "errors"

// ErrInvalidCredentials is returned when an email/password pair does not match the credential table.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserNotFound is returned when no user has the requested ID.
var ErrUserNotFound = errors.New("user not found")

// ErrAdminNotFound is returned when no user with the requested ID holds the admin role.
var ErrAdminNotFound = errors.New("admin not found")

// ErrDuplicateEmail is returned when a user with the same email already exists.
var ErrDuplicateEmail = errors.New("email already registered")
