package domain

import "errors"

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionExpired     = errors.New("session expired")
)

// Record errors, one sentinel per collection so callers can report which
// view slot failed.
var (
	ErrStoreNotFound    = errors.New("store not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrForbidden        = errors.New("access forbidden")
)

var ErrInvalidTransition = errors.New("invalid order status transition")
