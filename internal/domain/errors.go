package domain

import "errors"

var (
	ErrCelebrityNotFound = errors.New("celebrity not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrDraftNotFound     = errors.New("booking draft not found")
)

var (
	ErrBookingReviewed  = errors.New("booking has already been reviewed")
	ErrWizardTransition = errors.New("invalid wizard transition")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

var (
	ErrValidation = errors.New("validation error")
)
