// Package zhconv converts Chinese text between script variants using
// dictionary-driven longest-match substitution, compatible with OpenCC
// configurations and dictionaries.
//
// A Converter is built from a named configuration and applies an ordered
// chain of rewrite passes. Each pass scans left to right, replacing the
// longest dictionary match at each position and passing unmatched runes
// through untouched, so text outside the dictionaries (Latin, punctuation,
// emoji) survives conversion byte for byte.
//
// Built-in configurations cover Simplified/Traditional Chinese, the Taiwan
// and Hong Kong standards, Taiwanese idiom, and Japanese Shinjitai:
//
//	s2t, t2s     Simplified <-> Traditional
//	s2tw, tw2s   Simplified <-> Traditional (Taiwan)
//	s2hk, hk2s   Simplified <-> Traditional (Hong Kong)
//	s2twp, tw2sp Simplified <-> Taiwan with idiom conversion
//	t2tw, tw2t   Traditional <-> Taiwan standard
//	t2hk, hk2t   Traditional <-> Hong Kong variant
//	jp2t, t2jp   Japanese Shinjitai <-> Traditional characters
//
// Basic usage:
//
//	c, err := zhconv.New("s2t")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(c.Convert("头发与发展")) // 頭髮與發展
//
// Converters are immutable after construction and safe for unlimited
// concurrent use; Convert performs no locking and never fails. All
// configuration and dictionary problems surface as errors from New.
//
// Custom dictionaries and configurations load from any fs.FS via NewFromFS,
// or from a directory layered over the embedded catalog with
// WithResourceDir. For io.Reader/io.Writer plumbing, Transformer adapts a
// converter to the golang.org/x/text/transform machinery.
package zhconv
