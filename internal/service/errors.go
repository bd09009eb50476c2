package service

import (
	"errors"
	"fmt"
)

// Root error kinds. Callers match these with errors.Is; specific failures
// below wrap them so a handler can map a whole kind to one status.
var (
	ErrValidation    = errors.New("validation failed")
	ErrAuthRequired  = errors.New("you must be logged in")
	ErrEventNotFound = errors.New("event not found")
	ErrForbidden     = errors.New("you can only modify your own events")
)

var (
	ErrNameRequired     = fmt.Errorf("%w: name is required", ErrValidation)
	ErrEmailRequired    = fmt.Errorf("%w: email is required", ErrValidation)
	ErrPasswordRequired = fmt.Errorf("%w: password is required", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)

	ErrEventNameRequired     = fmt.Errorf("%w: event name is required", ErrValidation)
	ErrEventDateRequired     = fmt.Errorf("%w: event date is required", ErrValidation)
	ErrEventTimeRequired     = fmt.Errorf("%w: event time is required", ErrValidation)
	ErrEventLocationRequired = fmt.Errorf("%w: event location is required", ErrValidation)
)
