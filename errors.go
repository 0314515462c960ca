package zhconv

import (
	"github.com/dshills/zhconv/internal/catalog"
	"github.com/dshills/zhconv/internal/dict"
)

// Errors reported by New and NewFromFS. Conversion itself cannot fail, so
// every dictionary and configuration problem surfaces here.
var (
	// ErrConfigNotFound indicates the named configuration does not exist.
	ErrConfigNotFound = catalog.ErrConfigNotFound

	// ErrInvalidConfig indicates a configuration file that does not
	// describe a usable conversion.
	ErrInvalidConfig = catalog.ErrInvalidConfig

	// ErrDictNotFound indicates a dictionary referenced by a
	// configuration could not be located.
	ErrDictNotFound = catalog.ErrDictNotFound

	// ErrMalformedEntry indicates a dictionary entry that could not be
	// parsed.
	ErrMalformedEntry = dict.ErrMalformedEntry

	// ErrInvalidCompiled indicates compiled dictionary data that is
	// corrupt or has an unsupported version.
	ErrInvalidCompiled = dict.ErrInvalidCompiled
)
