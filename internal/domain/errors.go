package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrLocationNotFound = errors.New("location not found")
)

var (
	ErrInsufficientSlots = errors.New("not enough available slots")
	ErrContention        = errors.New("operation aborted after repeated conflicts, retry")
)

var (
	ErrEventHasBookings  = errors.New("event still has active bookings")
	ErrLocationHasEvents = errors.New("location still hosts events")
	ErrUserHasBookings   = errors.New("user still has bookings or events")
)

var (
	ErrEmailTaken = errors.New("email is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
