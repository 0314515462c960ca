package zhconv

import "github.com/dshills/zhconv/internal/data"

// Builtins returns the names of the embedded configurations in sorted
// order. Each name is accepted by New.
func Builtins() []string {
	return data.Names()
}
