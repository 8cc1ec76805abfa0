package gobhasha_test

import (
	"context"
	"testing"
	"time"

	"github.com/frndlabs/gobhasha"
	"github.com/frndlabs/gobhasha/cache"
	"github.com/frndlabs/gobhasha/provider"
)

// Benchmarks for performance validation

func BenchmarkHashText(b *testing.B) {
	text := "We're LIVE tonight! Join the session and earn real money"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gobhasha.HashText(text)
	}
}

func BenchmarkCacheKey(b *testing.B) {
	hash := "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gobhasha.CacheKey(hash, "hi-IN", gobhasha.ModeCodeMixed)
	}
}

func BenchmarkMemoryCache_Get(b *testing.B) {
	c := cache.NewMemoryCache(time.Hour)
	c.Set("test-key", "test-value")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("test-key")
	}
}

func BenchmarkDetectContext(b *testing.B) {
	text := "We're LIVE tonight! Join the session and don't miss the tips"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gobhasha.DetectContext(text)
	}
}

func BenchmarkEnhanceInput(b *testing.B) {
	text := "We're LIVE tonight! Join the session and don't miss the tips"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gobhasha.EnhanceInput(text, "hi-IN")
	}
}

func BenchmarkCollapseBrandBrackets(b *testing.B) {
	text := "Sirf FRND}}]] pe milega, {{Team FRND}} ke saath [[aaj]] hi"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gobhasha.CollapseBrandBrackets(text)
	}
}

func BenchmarkAnalyzeQuality(b *testing.B) {
	original := "We're LIVE tonight! Join the session. Don't miss the tips."
	translated := "Hum LIVE hain aaj raat! Session join karo. Tips miss mat karna."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gobhasha.AnalyzeQuality(original, translated, "en-IN", "hi-IN")
	}
}

func BenchmarkTranslate_Cached(b *testing.B) {
	tr := gobhasha.NewTranslator(provider.NewMockProvider(),
		gobhasha.WithCache(cache.NewMemoryCache(0)),
	)
	req := gobhasha.Request{SourceLang: "en-IN", TargetLang: "hi-IN", Text: "Good morning"}
	ctx := context.Background()

	if _, err := tr.Translate(ctx, req); err != nil {
		b.Fatalf("warmup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Translate(ctx, req)
	}
}
