package pipeline

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/zhconv/internal/dict"
)

// Stage is a single rewrite pass over a dictionary or dictionary group.
// The zero value is not usable; construct with NewStage.
type Stage struct {
	m dict.Matcher
}

// NewStage builds a Stage over m.
func NewStage(m dict.Matcher) Stage { return Stage{m: m} }

// Apply rewrites text in one greedy left-to-right pass. At each position the
// longest dictionary match is replaced by its first candidate value and the
// scan advances past the matched source; otherwise one rune is copied as-is
// and the scan advances by that rune. Bytes that do not form a valid rune
// are copied through verbatim, one byte at a time.
//
// The output buffer is allocated lazily on the first match, so text with no
// matches is returned unchanged without copying.
func (s Stage) Apply(text string) string {
	var b *strings.Builder
	for i := 0; i < len(text); {
		if n, values, ok := s.m.Match(text[i:]); ok {
			if b == nil {
				b = new(strings.Builder)
				b.Grow(len(text) + len(text)/8)
				b.WriteString(text[:i])
			}
			b.WriteString(values[0])
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		if b != nil {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	if b == nil {
		return text
	}
	return b.String()
}

// Matcher returns the dictionary the stage rewrites with.
func (s Stage) Matcher() dict.Matcher { return s.m }
