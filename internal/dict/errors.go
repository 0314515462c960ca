package dict

import "errors"

// Errors returned when loading dictionary data.
var (
	// ErrMalformedEntry indicates a dictionary entry that cannot be used,
	// such as an empty key or a missing value field.
	ErrMalformedEntry = errors.New("malformed dictionary entry")

	// ErrInvalidCompiled indicates compiled dictionary data that cannot be
	// decoded, such as a bad magic number or a truncated payload.
	ErrInvalidCompiled = errors.New("invalid compiled dictionary data")
)
