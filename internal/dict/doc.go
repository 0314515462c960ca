// Package dict provides the dictionary layer for text conversion: parsing,
// compiling, and longest-prefix matching over key/value substitution tables.
//
// A Dict maps UTF-8 keys to one or more candidate replacement values and
// answers longest-prefix queries against the head of a text. A Group combines
// several dictionaries at equal priority; on equal match lengths the earlier
// dictionary wins. Both satisfy Matcher, the lookup contract the conversion
// pipeline is built on.
//
// Key features:
//   - Longest-prefix lookup in O(matched bytes) via a double-array trie
//   - Immutable after construction; safe for unlimited concurrent readers
//   - OpenCC-compatible tab-separated text format with '#' comments
//   - Compact compiled form (zstd) for fast loading of large tables
//
// Basic usage:
//
//	entries, err := dict.ParseText(f)
//	d, err := dict.New(entries)
//	n, values, ok := d.Match("乾杯了")   // longest key prefixing the text
//
// Dictionaries never change once built. Construction reports malformed data;
// lookups cannot fail.
package dict
