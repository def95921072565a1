package translation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBackend answers from fixed maps and counts calls
type fakeBackend struct {
	results map[string]Result
	errors  map[string]error
	calls   atomic.Int32
}

func (f *fakeBackend) Translate(ctx context.Context, word string) (Result, error) {
	f.calls.Add(1)
	if err, ok := f.errors[word]; ok {
		return Result{Word: word, Outcome: OutcomeFailed}, err
	}
	return f.results[word], nil
}

func TestNewBackend(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		check   func(t *testing.T, b Backend)
	}{
		{
			name: "mymemory default",
			check: func(t *testing.T, b Backend) {
				if _, ok := b.(*MemoryBackend); !ok {
					t.Errorf("expected *MemoryBackend, got %T", b)
				}
			},
		},
		{
			name: "openai",
			mutate: func(c *Config) {
				c.Provider = ProviderOpenAI
				c.OpenAIKey = "test-api-key"
			},
			check: func(t *testing.T, b Backend) {
				if _, ok := b.(*OpenAIBackend); !ok {
					t.Errorf("expected *OpenAIBackend, got %T", b)
				}
			},
		},
		{
			name:   "breaker wrapper",
			mutate: func(c *Config) { c.BreakerFailures = 3 },
			check: func(t *testing.T, b Backend) {
				if _, ok := b.(*Breaker); !ok {
					t.Errorf("expected *Breaker, got %T", b)
				}
			},
		},
		{
			name: "google",
			mutate: func(c *Config) {
				c.Provider = ProviderGoogle
				c.GoogleKey = "test-api-key"
			},
			check: func(t *testing.T, b Backend) {
				if _, ok := b.(*GoogleBackend); !ok {
					t.Errorf("expected *GoogleBackend, got %T", b)
				}
			},
		},
		{
			name: "google with invalid language",
			mutate: func(c *Config) {
				c.Provider = ProviderGoogle
				c.SourceLang = "not a language"
			},
			wantErr: true,
		},
		{
			name:    "missing glossary",
			mutate:  func(c *Config) { c.GlossaryFile = "does-not-exist.yaml" },
			wantErr: true,
		},
		{
			name:    "openai without key",
			mutate:  func(c *Config) { c.Provider = ProviderOpenAI },
			wantErr: true,
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Provider = "babelfish" },
			wantErr: true,
		},
		{
			name:    "same language pair",
			mutate:  func(c *Config) { c.TargetLang = "en" },
			wantErr: true,
		},
		{
			name:    "missing source",
			mutate:  func(c *Config) { c.SourceLang = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			b, err := NewBackend(context.Background(), cfg, newTestLogger())
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBackend() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, b)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "en", cfg.SourceLang)
	assert.Equal(t, "de", cfg.TargetLang)
	assert.Equal(t, "en|de", cfg.LangPair())
	assert.Equal(t, ProviderMyMemory, cfg.Provider)
	assert.Equal(t, DefaultTrustedMarker, cfg.TrustedMarker)
	assert.Zero(t, cfg.Timeout)
	assert.Zero(t, cfg.BreakerFailures)
	assert.NoError(t, cfg.Validate())
}

func TestTranslationCache(t *testing.T) {
	cache := NewTranslationCache()

	// Test empty cache
	_, found := cache.Get("dog")
	if found {
		t.Error("Expected not found in empty cache")
	}

	// Test adding and retrieving
	cache.Add("dog", Result{Word: "dog", Text: "Hund", Outcome: OutcomeTrusted})
	cache.Add("cat", Result{Word: "cat", Text: "Katze", Outcome: OutcomeFallback})

	result, found := cache.Get("dog")
	if !found {
		t.Error("Expected to find 'dog' in cache")
	}
	if result.Text != "Hund" {
		t.Errorf("Expected 'Hund', got '%s'", result.Text)
	}

	// Test overwriting
	cache.Add("dog", Result{Word: "dog", Text: "Hund (Tier)"})
	result, found = cache.Get("dog")
	if !found || result.Text != "Hund (Tier)" {
		t.Errorf("Expected 'Hund (Tier)', got '%s'", result.Text)
	}

	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}
}

func TestCachingBackend(t *testing.T) {
	inner := &fakeBackend{
		results: map[string]Result{"dog": {Word: "dog", Text: "Hund", Outcome: OutcomeTrusted}},
		errors:  map[string]error{"xyzzy": ErrNoTranslation},
	}
	cache := NewTranslationCache()
	b := NewCachingBackend(inner, cache)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result, err := b.Translate(ctx, "dog")
		require.NoError(t, err)
		assert.Equal(t, "Hund", result.Text)
	}
	assert.Equal(t, int32(1), inner.calls.Load())

	// failures are not cached
	for i := 0; i < 2; i++ {
		_, err := b.Translate(ctx, "xyzzy")
		assert.ErrorIs(t, err, ErrNoTranslation)
	}
	assert.Equal(t, int32(3), inner.calls.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	boom := errors.New("connection refused")
	inner := &fakeBackend{
		results: map[string]Result{"dog": {Word: "dog", Text: "Hund", Outcome: OutcomeTrusted}},
		errors:  map[string]error{"a": boom, "b": boom},
	}
	b := NewBreaker(inner, "test", 2, newTestLogger())
	ctx := context.Background()

	result, err := b.Translate(ctx, "dog")
	require.NoError(t, err)
	assert.Equal(t, "Hund", result.Text)

	_, err = b.Translate(ctx, "a")
	assert.ErrorIs(t, err, boom)
	_, err = b.Translate(ctx, "b")
	assert.ErrorIs(t, err, boom)

	// open: the backend is no longer called
	result, err = b.Translate(ctx, "dog")
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Equal(t, "dog", result.Word)
	assert.Equal(t, int32(3), inner.calls.Load())
	assert.Equal(t, gobreaker.StateOpen, b.State())
}

type closingBackend struct {
	fakeBackend
	closed int
}

func (c *closingBackend) Close() error {
	c.closed++
	return nil
}

func TestClose_ForwardsThroughWrappers(t *testing.T) {
	inner := &closingBackend{}

	var b Backend = inner
	b = NewBreaker(b, "test", 1, newTestLogger())
	b = NewGlossaryBackend(b, Glossary{})
	b = NewCachingBackend(b, NewTranslationCache())

	require.NoError(t, Close(b))
	assert.Equal(t, 1, inner.closed)

	// backends without resources are left alone
	assert.NoError(t, Close(&fakeBackend{}))
}
