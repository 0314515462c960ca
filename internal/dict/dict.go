package dict

import (
	"fmt"
	"unicode/utf8"

	cedar "github.com/liuzl/cedar-go"
)

// Entry is a single dictionary mapping from a key to one or more candidate
// replacement values. Conversion uses the first candidate; the remainder are
// retained for callers that want alternatives. A value may be the empty
// string, which rewrites the key to nothing.
type Entry struct {
	Key    string
	Values []string
}

// Matcher answers longest-prefix queries against the head of a text.
// Implementations are immutable and safe for concurrent use.
type Matcher interface {
	// Match returns the byte length of the longest key that is a prefix of
	// text, together with that key's candidate values. ok is false when no
	// key matches; a matched length is always at least one byte.
	Match(text string) (n int, values []string, ok bool)

	// MaxKeyLen returns the length in runes of the longest key, zero for an
	// empty dictionary. It bounds how far any Match can read ahead.
	MaxKeyLen() int
}

// Dict is an immutable substitution dictionary indexed for longest-prefix
// matching. The zero value is not usable; construct with New.
type Dict struct {
	trie      *cedar.Cedar
	values    [][]string
	size      int
	maxKeyLen int
}

// New builds a Dict from entries. Later entries override earlier ones with
// the same key. It fails with ErrMalformedEntry if an entry has an empty key
// or no values.
func New(entries []Entry) (*Dict, error) {
	d := &Dict{trie: cedar.New()}
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("empty key: %w", ErrMalformedEntry)
		}
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("key %q has no values: %w", e.Key, ErrMalformedEntry)
		}
		if i, ok := index[e.Key]; ok {
			d.values[i] = e.Values
			continue
		}
		index[e.Key] = len(d.values)
		d.values = append(d.values, e.Values)
		if n := utf8.RuneCountInString(e.Key); n > d.maxKeyLen {
			d.maxKeyLen = n
		}
	}
	for key, i := range index {
		if err := d.trie.Insert([]byte(key), i); err != nil {
			return nil, fmt.Errorf("indexing key %q: %w", key, err)
		}
	}
	d.size = len(index)
	return d, nil
}

// Match walks the trie byte by byte from the start of text, remembering the
// deepest node that terminates a key. Cost is bounded by the longest key,
// not by text or dictionary size.
func (d *Dict) Match(text string) (int, []string, bool) {
	var (
		n     int
		vi    int
		found bool
		from  int
		b     [1]byte
	)
	for i := 0; i < len(text); i++ {
		b[0] = text[i]
		to, err := d.trie.Jump(b[:], from)
		if err != nil {
			break
		}
		from = to
		if v, err := d.trie.Value(from); err == nil {
			n, vi, found = i+1, v, true
		}
	}
	if !found {
		return 0, nil, false
	}
	return n, d.values[vi], true
}

// MaxKeyLen returns the rune length of the longest key.
func (d *Dict) MaxKeyLen() int { return d.maxKeyLen }

// Len returns the number of distinct keys.
func (d *Dict) Len() int { return d.size }
