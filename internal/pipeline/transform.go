package pipeline

import (
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/dshills/zhconv/internal/dict"
)

// Transformer adapts the pipeline to the x/text transform machinery, for use
// with transform.NewReader, transform.NewWriter, and transform.String. Each
// stage becomes one streaming link and transform.Chain buffers between links,
// so the result matches Convert for any input chunking. A stage only consumes
// a position once its full lookahead window is buffered, which keeps output
// independent of where chunk boundaries fall.
func (p *Pipeline) Transformer() transform.Transformer {
	switch len(p.stages) {
	case 0:
		return transform.Nop
	case 1:
		return stageTransformer{m: p.stages[0].m}
	}
	links := make([]transform.Transformer, len(p.stages))
	for i, s := range p.stages {
		links[i] = stageTransformer{m: s.m}
	}
	return transform.Chain(links...)
}

// stageTransformer streams one rewrite stage. It carries no state between
// calls; held-back input stays in the caller's buffer via ErrShortSrc.
type stageTransformer struct {
	transform.NopResetter
	m dict.Matcher
}

func (t stageTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	// The most bytes a Match at one position can inspect. At least UTFMax so
	// a rune is never consumed in pieces.
	window := t.m.MaxKeyLen() * utf8.UTFMax
	if window < utf8.UTFMax {
		window = utf8.UTFMax
	}

	s := string(src)
	for nSrc < len(s) {
		rest := s[nSrc:]
		if !atEOF && len(rest) < window {
			err = transform.ErrShortSrc
			return
		}
		if n, values, ok := t.m.Match(rest); ok {
			v := values[0]
			if nDst+len(v) > len(dst) {
				err = transform.ErrShortDst
				return
			}
			nDst += copy(dst[nDst:], v)
			nSrc += n
			continue
		}
		_, size := utf8.DecodeRuneInString(rest)
		if nDst+size > len(dst) {
			err = transform.ErrShortDst
			return
		}
		nDst += copy(dst[nDst:], rest[:size])
		nSrc += size
	}
	return
}
