package domain

import "errors"

// Common domain errors
var (
	ErrValidation = errors.New("invalid input")
	ErrStorage    = errors.New("storage failure")
)

// User errors
var (
	ErrDuplicateUser      = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Catalog errors
var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrMovieUnavailable = errors.New("movie not available")
)

// Rental errors
var (
	ErrRentalNotFound  = errors.New("rental not found")
	ErrAlreadyReturned = errors.New("movie already returned")
)

// Blog errors
var (
	ErrPostNotFound = errors.New("post not found")
)
