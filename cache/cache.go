// Package cache provides engine-response caching implementations.
//
// Caching is opt-in: the pipeline only consults a cache when one is
// wired in. Keys combine the enhanced input hash, the target language
// and the style mode, so a change to any of the three is a miss.
package cache

// TranslationCache is the interface for caching engine responses.
type TranslationCache interface {
	// Get retrieves a cached response. Returns empty string and false
	// if not found or expired.
	Get(key string) (string, bool)

	// Set stores an engine response in the cache.
	Set(key string, value string) error
}
