package translation

import (
	"context"
	"io"
	"log/slog"
)

// Backend translates a single word
type Backend interface {
	Translate(ctx context.Context, word string) (Result, error)
}

// NewBackend creates the backend selected by config.Provider. It is
// wrapped in a circuit breaker when config.BreakerFailures is set and
// consults the glossary first when config.GlossaryFile is set.
func NewBackend(ctx context.Context, config *Config, logger *slog.Logger) (Backend, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var backend Backend
	switch config.Provider {
	case ProviderOpenAI:
		backend = NewOpenAIBackend(config, logger)
	case ProviderGoogle:
		google, err := NewGoogleBackend(ctx, config, logger)
		if err != nil {
			return nil, err
		}
		backend = google
	default:
		backend = NewMemoryBackend(config, logger)
	}

	if config.BreakerFailures > 0 {
		backend = NewBreaker(backend, config.Provider, config.BreakerFailures, logger)
	}

	if config.GlossaryFile != "" {
		glossary, err := LoadGlossary(config.GlossaryFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("glossary loaded", "path", config.GlossaryFile, "words", len(glossary))
		backend = NewGlossaryBackend(backend, glossary)
	}

	return backend, nil
}

// Close releases backend when it holds resources, such as an API client
func Close(backend Backend) error {
	if c, ok := backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// TranslationCache stores translations in memory for a single run
type TranslationCache struct {
	translations map[string]Result
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]Result),
	}
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(word string, result Result) {
	tc.translations[word] = result
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(word string) (Result, bool) {
	result, ok := tc.translations[word]
	return result, ok
}

// Len returns the number of cached words
func (tc *TranslationCache) Len() int {
	return len(tc.translations)
}

// CachingBackend answers repeated words from a TranslationCache. Only
// successful translations are cached.
type CachingBackend struct {
	backend Backend
	cache   *TranslationCache
}

// NewCachingBackend wraps backend with cache
func NewCachingBackend(backend Backend, cache *TranslationCache) *CachingBackend {
	return &CachingBackend{backend: backend, cache: cache}
}

// Translate returns the cached result for word or asks the wrapped backend
func (c *CachingBackend) Translate(ctx context.Context, word string) (Result, error) {
	if result, ok := c.cache.Get(word); ok {
		return result, nil
	}

	result, err := c.backend.Translate(ctx, word)
	if err != nil {
		return result, err
	}
	c.cache.Add(word, result)
	return result, nil
}

// Close closes the wrapped backend
func (c *CachingBackend) Close() error {
	return Close(c.backend)
}
