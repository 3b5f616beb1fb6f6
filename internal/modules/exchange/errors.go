package exchange

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrRequestNotFound  = errors.New("exchange request not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrNotBookable      = errors.New("property is not open for stay requests")
	ErrOwnProperty      = errors.New("cannot request a stay at your own property")
	ErrNotAllowed       = errors.New("you cannot act on this request")
	ErrNotPending       = errors.New("request is no longer pending")
	ErrTooManyGuests    = errors.New("guest count exceeds the property capacity")
)
