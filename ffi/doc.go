// Package ffi presents the conversion engine through a foreign-call
// shaped boundary: numeric configuration identifiers, opaque integer
// handles, and stable result codes instead of Go errors.
//
// The numeric values of Config and Result are a frozen wire contract
// shared with non-Go callers; new values may be appended but existing
// ones never renumbered.
//
// Basic usage:
//
//	h, res := ffi.Create(ffi.S2T)
//	if res != ffi.Success {
//		// res says why
//	}
//	out, res := ffi.Convert(h, "头发")
//	ffi.Destroy(h)
//
// A handle may be used from any number of goroutines at once. Destroy
// invalidates the handle for all subsequent calls; a conversion already
// in flight when Destroy runs still completes on the old engine, since
// the engine is immutable and garbage collected. There is no free-string
// operation: returned strings are ordinary Go strings. A cgo shim that
// copies them to C memory owns those copies and frees them itself.
//
// Panics inside the boundary are caught and reported as InternalError
// rather than crossing a foreign-call edge as a crash.
package ffi
