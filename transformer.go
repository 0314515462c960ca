package zhconv

import "golang.org/x/text/transform"

// Transformer returns a streaming transformer that applies the conversion
// chain, for use with transform.NewReader, transform.NewWriter, and
// friends. Output matches Convert for any chunking of the input.
//
// Each call returns an independent transformer; a single transformer must
// not be shared across goroutines, but separate transformers from the
// same Converter may run concurrently.
func (c *Converter) Transformer() transform.Transformer {
	return c.pipe.Transformer()
}
