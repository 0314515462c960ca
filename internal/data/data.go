// Package data embeds the built-in configuration catalog: one JSON
// configuration per built-in conversion plus the dictionaries they
// reference. Adding a configuration is a data change here, not a code
// change anywhere else.
package data

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// FS holds the embedded catalog. Configurations live under configs/ and
// dictionaries under dicts/.
//
//go:embed configs dicts
var FS embed.FS

// ConfigPath returns the catalog path of a named configuration, such as
// "s2t".
func ConfigPath(name string) string {
	return path.Join("configs", name+".json")
}

// Names returns the names of all embedded configurations, sorted.
func Names() []string {
	ents, err := fs.ReadDir(FS, "configs")
	if err != nil {
		// The directory is embedded at build time; it cannot be absent.
		panic("zhconv: embedded catalog missing: " + err.Error())
	}
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		if n, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
