// Package pipeline composes dictionary rewrite stages into an ordered text
// conversion pipeline.
//
// A Stage performs one greedy maximal-forward-matching pass: at each position
// it substitutes the longest dictionary match, or passes a single rune
// through untouched. A Pipeline feeds each stage's output to the next, so
// later stages see earlier rewrites. Stages and pipelines are immutable and
// safe for unlimited concurrent use.
//
// The same pipeline can run as a streaming transform.Transformer; see
// Pipeline.Transformer.
package pipeline
