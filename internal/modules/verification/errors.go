package verification

import "errors"

var (
	ErrAlreadyPending = errors.New("a verification is already awaiting review")
	ErrNotFound       = errors.New("verification not found")
)
