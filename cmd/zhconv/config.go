package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// toolConfig is the TOML configuration of the command-line tool. Flags
// override file values.
type toolConfig struct {
	// DataDir is layered over the embedded catalog, like --data-dir.
	DataDir string `toml:"data_dir"`
	// DefaultConversion is used by convert when --conversion is not
	// given.
	DefaultConversion string `toml:"default_conversion"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// loadToolConfig reads the file at path, or the user-level default
// location when path is empty. A missing default file is not an error; a
// missing explicit one is.
func loadToolConfig(path string) (toolConfig, error) {
	var cfg toolConfig

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "zhconv", "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
