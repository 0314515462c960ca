package catalog

import (
	"errors"
	"io/fs"
)

// Layered returns a filesystem that searches layers in order, so files in
// earlier layers shadow files in later ones. Non-existence moves to the next
// layer; any other error stops the search.
func Layered(layers ...fs.FS) fs.FS {
	return layered(layers)
}

type layered []fs.FS

func (l layered) Open(name string) (fs.File, error) {
	for _, fsys := range l {
		f, err := fsys.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// Stat forwards to the first layer holding the file, keeping modification
// times accurate for compiled-dictionary freshness checks.
func (l layered) Stat(name string) (fs.FileInfo, error) {
	for _, fsys := range l {
		info, err := fs.Stat(fsys, name)
		if err == nil {
			return info, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}
