// Package catalog loads conversion configurations and assembles them into
// runnable pipelines.
//
// A configuration is a JSON document, compatible with OpenCC config files,
// naming a segmentation dictionary and an ordered conversion chain of
// dictionary references. References resolve against an fs.FS, trying the
// config file's directory, the reference path itself, and a dicts/
// subdirectory. A compiled dictionary sibling is preferred over its text
// source when it is at least as new.
//
// Filesystems can be stacked with Layered so caller-provided resources
// shadow the embedded catalog.
//
// All construction failures are reported here; a Built result is fully
// usable and immutable.
package catalog
