package decline_booking

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAccessDenied     = errors.New("access denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrCannotDecline    = errors.New("booking cannot be declined")
	ErrActionInProgress = errors.New("another action is in progress for this booking")
	ErrInternal         = errors.New("internal error")
)
