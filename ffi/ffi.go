package ffi

import (
	"fmt"
	"sync"

	"github.com/dshills/zhconv"
)

// Result is the status code of a boundary call. The numeric values are
// frozen.
type Result int32

const (
	// Success means the operation completed.
	Success Result = 0
	// InvalidHandle means the handle is unknown or already destroyed.
	InvalidHandle Result = 1
	// InvalidArgument means an argument is out of range.
	InvalidArgument Result = 2
	// CreationFailed means the engine could not be built, such as when a
	// dictionary resource is missing or malformed.
	CreationFailed Result = 3
	// InternalError means an unexpected fault was caught at the boundary.
	InternalError Result = 4
)

// String returns the name of the result code.
func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case InvalidHandle:
		return "InvalidHandle"
	case InvalidArgument:
		return "InvalidArgument"
	case CreationFailed:
		return "CreationFailed"
	case InternalError:
		return "InternalError"
	}
	return fmt.Sprintf("Result(%d)", int32(r))
}

// Config identifies a built-in configuration by its frozen numeric value.
type Config int32

const (
	// S2T converts Simplified to Traditional.
	S2T Config = 0
	// T2S converts Traditional to Simplified.
	T2S Config = 1
	// S2TW converts Simplified to Traditional (Taiwan).
	S2TW Config = 2
	// TW2S converts Traditional (Taiwan) to Simplified.
	TW2S Config = 3
	// S2HK converts Simplified to Traditional (Hong Kong).
	S2HK Config = 4
	// HK2S converts Traditional (Hong Kong) to Simplified.
	HK2S Config = 5
	// S2TWP converts Simplified to Traditional (Taiwan) with Taiwanese
	// idiom.
	S2TWP Config = 6
	// TW2SP converts Traditional (Taiwan) to Simplified with Mainland
	// idiom.
	TW2SP Config = 7
	// T2TW converts Traditional to Traditional (Taiwan).
	T2TW Config = 8
	// TW2T converts Traditional (Taiwan) to Traditional.
	TW2T Config = 9
	// T2HK converts Traditional to Traditional (Hong Kong).
	T2HK Config = 10
	// HK2T converts Traditional (Hong Kong) to Traditional.
	HK2T Config = 11
	// JP2T converts Japanese Shinjitai to Traditional.
	JP2T Config = 12
	// T2JP converts Traditional to Japanese Shinjitai.
	T2JP Config = 13

	numConfigs = 14
)

var configNames = [numConfigs]string{
	"s2t", "t2s", "s2tw", "tw2s", "s2hk", "hk2s", "s2twp",
	"tw2sp", "t2tw", "tw2t", "t2hk", "hk2t", "jp2t", "t2jp",
}

// Name returns the configuration's catalog name, such as "s2t", or ""
// if the value is out of range.
func (c Config) Name() string {
	if c < 0 || c >= numConfigs {
		return ""
	}
	return configNames[c]
}

// String returns the catalog name, or a numeric form for out-of-range
// values.
func (c Config) String() string {
	if name := c.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("Config(%d)", int32(c))
}

// Handle identifies a created engine. The zero Handle is never valid.
type Handle uint64

// engines maps live handles to their converters. Handles are never
// reused, so a stale handle stays invalid instead of aliasing a newer
// engine.
var engines = struct {
	sync.RWMutex
	table map[Handle]*zhconv.Converter
	next  Handle
}{
	table: make(map[Handle]*zhconv.Converter),
	next:  1,
}

// Create builds an engine for the given configuration and returns its
// handle. On failure the handle is zero and the result says why.
func Create(config Config) (handle Handle, res Result) {
	defer contain(&res)

	if config < 0 || config >= numConfigs {
		return 0, InvalidArgument
	}
	conv, err := zhconv.New(config.Name())
	if err != nil {
		return 0, CreationFailed
	}

	engines.Lock()
	defer engines.Unlock()
	h := engines.next
	engines.next++
	engines.table[h] = conv
	return h, Success
}

// Convert rewrites text through the engine behind the handle. On failure
// the string is empty and the result says why.
func Convert(handle Handle, text string) (out string, res Result) {
	defer contain(&res)

	engines.RLock()
	conv := engines.table[handle]
	engines.RUnlock()
	if conv == nil {
		return "", InvalidHandle
	}
	// The conversion runs outside the table lock. If the handle is
	// destroyed meanwhile, this call still completes on the old engine.
	return conv.Convert(text), Success
}

// Destroy invalidates the handle. Destroying an unknown or already
// destroyed handle reports InvalidHandle and has no other effect.
func Destroy(handle Handle) (res Result) {
	defer contain(&res)

	engines.Lock()
	defer engines.Unlock()
	if _, ok := engines.table[handle]; !ok {
		return InvalidHandle
	}
	delete(engines.table, handle)
	return Success
}

// contain converts a panic into an InternalError result so faults never
// cross the boundary as a crash.
func contain(res *Result) {
	if recover() != nil {
		*res = InternalError
	}
}
