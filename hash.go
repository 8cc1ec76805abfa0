package gobhasha

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key from a text hash, target language and
// style mode. Mode is part of the key because the same input translates
// differently across modes.
func CacheKey(hash, targetLang string, mode StyleMode) string {
	return hash + ":" + targetLang + ":" + string(mode)
}
