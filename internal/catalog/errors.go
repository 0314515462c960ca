package catalog

import "errors"

// Errors returned when building a configuration.
var (
	// ErrConfigNotFound indicates the named configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration not found")

	// ErrInvalidConfig indicates a configuration that cannot be used: bad
	// JSON, a missing or unsupported dictionary type, or a bad segmentation
	// section.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDictNotFound indicates a referenced dictionary file that could not
	// be resolved on the filesystem.
	ErrDictNotFound = errors.New("dictionary not found")
)
