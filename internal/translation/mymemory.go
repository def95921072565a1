package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// MemoryBackend translates words with the MyMemory translation API
type MemoryBackend struct {
	config     *Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewMemoryBackend creates a MyMemory backend
func NewMemoryBackend(config *Config, logger *slog.Logger) *MemoryBackend {
	return &MemoryBackend{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		log:        logger.With("adapter", "mymemory"),
	}
}

// RequestURL builds the lookup URL for a word
func (b *MemoryBackend) RequestURL(word string) string {
	params := url.Values{}
	params.Set("q", word)
	params.Set("langpair", b.config.LangPair())
	if b.config.Email != "" {
		params.Set("de", b.config.Email)
	}

	sep := "?"
	if strings.Contains(b.config.APIURL, "?") {
		sep = "&"
	}
	return b.config.APIURL + sep + params.Encode()
}

// Translate looks a word up and applies the fallback policy to the reply
func (b *MemoryBackend) Translate(ctx context.Context, word string) (Result, error) {
	failed := Result{Word: word, Outcome: OutcomeFailed}
	if strings.TrimSpace(word) == "" {
		return failed, ErrEmptyWord
	}

	b.log.DebugContext(ctx, "mymemory request", slog.String("word", word), slog.String("langpair", b.config.LangPair()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.RequestURL(word), nil)
	if err != nil {
		return failed, fmt.Errorf("mymemory: create request: %w", err)
	}
	req.Header.Set("User-Agent", b.config.UserAgent)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return failed, fmt.Errorf("mymemory: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failed, fmt.Errorf("mymemory: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failed, fmt.Errorf("mymemory: read body: %w", err)
	}

	var decoded memoryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return failed, fmt.Errorf("mymemory: decode json: %w: %v", ErrMalformedResponse, err)
	}

	result, err := selectTranslation(word, &decoded, b.config.TrustedMarker)
	if err != nil {
		return result, fmt.Errorf("mymemory: %w", err)
	}

	b.log.DebugContext(ctx, "mymemory response",
		slog.String("word", word),
		slog.String("translation", result.Text),
		slog.String("outcome", result.Outcome.String()),
	)

	return result, nil
}
