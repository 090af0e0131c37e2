package errorvalues

import "errors"

var (
	ErrActivityNotFound = errors.New("activity doesn't exist")
	ErrInvalidActivity  = errors.New("invalid activity")
	ErrDateOutOfRange   = errors.New("activity date is too far in the future or too old")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrEmptySearchTerm  = errors.New("search term can't be empty")
	ErrInvalidCount     = errors.New("count must be between 1 and 1000")
	ErrUnknownCategory  = errors.New("unknown activity category")
	ErrUnknownPeriod    = errors.New("unknown report period")
)
