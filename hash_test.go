package gobhasha

import (
	"strings"
	"testing"
)

func TestHashText(t *testing.T) {
	h1 := HashText("Hello team")
	h2 := HashText("  Hello team  ")
	if h1 != h2 {
		t.Error("Hash should ignore surrounding whitespace")
	}
	if len(h1) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(h1))
	}
	if HashText("Hello team") == HashText("Hello teams") {
		t.Error("Different texts should hash differently")
	}
}

func TestCacheKey(t *testing.T) {
	key := CacheKey("abc123", "hi-IN", ModeCodeMixed)
	if key != "abc123:hi-IN:code-mixed" {
		t.Errorf("CacheKey = %q", key)
	}
	if CacheKey("abc123", "hi-IN", ModeFormal) == key {
		t.Error("Mode must be part of the key")
	}
}

func TestNormalizeTag(t *testing.T) {
	if got := NormalizeTag("hi_IN"); got != "hi-IN" {
		t.Errorf("NormalizeTag(hi_IN) = %q", got)
	}
	if got := NormalizeTag("hi-IN"); got != "hi-IN" {
		t.Errorf("NormalizeTag(hi-IN) = %q", got)
	}
}

func TestFullVersion(t *testing.T) {
	if !strings.HasPrefix(FullVersion(), Version) {
		t.Errorf("FullVersion should start with %q, got %q", Version, FullVersion())
	}
}

func TestUserAgent(t *testing.T) {
	if got := UserAgent(); got != Name+"/"+Version {
		t.Errorf("UserAgent = %q", got)
	}
}
