package inbox

import "errors"

var (
	ErrItemNotFound     = errors.New("inbox item not found")
	ErrAlreadyReviewed  = errors.New("inbox item already reviewed")
	ErrInvalidAction    = errors.New("action must be approve or deny")
	ErrInvalidType      = errors.New("unknown inbox item type")
	ErrInvalidReference = errors.New("reference does not resolve to an existing record")
)
