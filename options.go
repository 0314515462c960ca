package zhconv

import "log/slog"

type options struct {
	resourceDir string
	logger      *slog.Logger
}

// Option configures Converter construction.
type Option func(*options)

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithResourceDir layers a directory over the configuration filesystem.
// Configurations and dictionaries found under dir shadow embedded ones of
// the same path, so individual dictionaries can be replaced without
// redefining whole configurations.
func WithResourceDir(dir string) Option {
	return func(o *options) {
		o.resourceDir = dir
	}
}

// WithLogger sets a logger for construction-time diagnostics, such as
// which dictionary files were loaded and whether compiled forms were
// used. Conversion itself never logs.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
