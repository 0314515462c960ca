// Package segment provides dictionary-driven text segmentation using maximal
// forward matching: the longest dictionary word is cut at each position, and
// a single rune is cut where no word matches.
package segment

import (
	"unicode/utf8"

	"github.com/dshills/zhconv/internal/dict"
)

// MaxMatch segments text against a dictionary. It is immutable and safe for
// concurrent use.
type MaxMatch struct {
	m dict.Matcher
}

// NewMaxMatch builds a segmenter over m.
func NewMaxMatch(m dict.Matcher) *MaxMatch {
	return &MaxMatch{m: m}
}

// Segment splits text into dictionary words and single runes. Empty input
// yields no segments. Bytes that do not form a valid rune become one-byte
// segments.
func (s *MaxMatch) Segment(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for i := 0; i < len(text); {
		if n, _, ok := s.m.Match(text[i:]); ok {
			out = append(out, text[i:i+n])
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		out = append(out, text[i:i+size])
		i += size
	}
	return out
}
