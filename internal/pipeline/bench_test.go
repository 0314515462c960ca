package pipeline

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dshills/zhconv/internal/dict"
)

// generateMixedText interleaves convertible characters with neutral filler at
// roughly the given hit rate.
func generateMixedText(runes int, hitRate float64) string {
	rng := rand.New(rand.NewSource(7))
	var sb strings.Builder
	sb.Grow(runes * 3)
	for i := 0; i < runes; i++ {
		if rng.Float64() < hitRate {
			sb.WriteRune('发')
		} else {
			sb.WriteRune(rune(0x4E00 + rng.Intn(512)))
		}
	}
	return sb.String()
}

func benchStage(b *testing.B) Stage {
	b.Helper()
	d, err := dict.New([]dict.Entry{
		{Key: "发", Values: []string{"發"}},
		{Key: "发展", Values: []string{"發展"}},
		{Key: "发展中国家", Values: []string{"發展中國家"}},
	})
	if err != nil {
		b.Fatalf("dict.New failed: %v", err)
	}
	return NewStage(d)
}

func BenchmarkStageApplyMiss(b *testing.B) {
	s := benchStage(b)
	text := generateMixedText(4096, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Apply(text)
	}
}

func BenchmarkStageApplyMixed(b *testing.B) {
	s := benchStage(b)
	text := generateMixedText(4096, 0.3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Apply(text)
	}
}
