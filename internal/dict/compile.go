package dict

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Compiled dictionary container: a 4-byte magic, a format version byte, then
// a zstd frame holding uvarint-framed entries. Entry order is preserved so a
// compile/load round trip builds an identical dictionary.
const (
	compiledMagic   = "ZCD1"
	compiledVersion = 1
)

// CompiledExt is the file extension for compiled dictionaries.
const CompiledExt = ".zcd"

// Compile encodes entries into the compiled dictionary format. Entries are
// validated the same way New validates them.
func Compile(entries []Entry) ([]byte, error) {
	var payload bytes.Buffer
	var tmp [binary.MaxVarintLen64]byte
	putUvarint := func(v uint64) {
		payload.Write(tmp[:binary.PutUvarint(tmp[:], v)])
	}
	putString := func(s string) {
		putUvarint(uint64(len(s)))
		payload.WriteString(s)
	}
	putUvarint(uint64(len(entries)))
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("empty key: %w", ErrMalformedEntry)
		}
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("key %q has no values: %w", e.Key, ErrMalformedEntry)
		}
		putString(e.Key)
		putUvarint(uint64(len(e.Values)))
		for _, v := range e.Values {
			putString(v)
		}
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("compressing dictionary: %w", err)
	}
	out := make([]byte, 0, len(compiledMagic)+1+payload.Len()/2)
	out = append(out, compiledMagic...)
	out = append(out, compiledVersion)
	out = enc.EncodeAll(payload.Bytes(), out)
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("compressing dictionary: %w", err)
	}
	return out, nil
}

// CompileText parses the text format and compiles it in one step.
func CompileText(data []byte) ([]byte, error) {
	entries, err := ParseText(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return Compile(entries)
}

// LoadCompiled decodes data produced by Compile back into entries.
func LoadCompiled(data []byte) ([]Entry, error) {
	header := len(compiledMagic) + 1
	if len(data) < header || string(data[:len(compiledMagic)]) != compiledMagic {
		return nil, fmt.Errorf("bad magic: %w", ErrInvalidCompiled)
	}
	if v := data[len(compiledMagic)]; v != compiledVersion {
		return nil, fmt.Errorf("unsupported version %d: %w", v, ErrInvalidCompiled)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing dictionary: %w", err)
	}
	defer dec.Close()
	payload, err := dec.DecodeAll(data[header:], nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing dictionary: %v: %w", err, ErrInvalidCompiled)
	}

	pos := 0
	nextUvarint := func() (uint64, error) {
		v, n := binary.Uvarint(payload[pos:])
		if n <= 0 {
			return 0, fmt.Errorf("truncated payload: %w", ErrInvalidCompiled)
		}
		pos += n
		return v, nil
	}
	nextString := func() (string, error) {
		n, err := nextUvarint()
		if err != nil {
			return "", err
		}
		if uint64(len(payload)-pos) < n {
			return "", fmt.Errorf("truncated payload: %w", ErrInvalidCompiled)
		}
		s := string(payload[pos : pos+int(n)])
		pos += int(n)
		return s, nil
	}

	count, err := nextUvarint()
	if err != nil {
		return nil, err
	}
	// Counts come from untrusted bytes; cap preallocation and let the
	// truncation checks above reject short payloads.
	entries := make([]Entry, 0, min(count, 1<<20))
	for i := uint64(0); i < count; i++ {
		key, err := nextString()
		if err != nil {
			return nil, err
		}
		nvals, err := nextUvarint()
		if err != nil {
			return nil, err
		}
		values := make([]string, 0, min(nvals, 16))
		for j := uint64(0); j < nvals; j++ {
			v, err := nextString()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		entries = append(entries, Entry{Key: key, Values: values})
	}
	return entries, nil
}
