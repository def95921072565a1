package translation

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleBackend translates words with the Google Cloud Translation API
type GoogleBackend struct {
	client *gtranslate.Client
	source language.Tag
	target language.Tag
	log    *slog.Logger
}

// NewGoogleBackend creates a Google backend. Without config.GoogleKey the
// client falls back to Application Default Credentials.
func NewGoogleBackend(ctx context.Context, config *Config, logger *slog.Logger, opts ...option.ClientOption) (*GoogleBackend, error) {
	source, err := language.Parse(config.SourceLang)
	if err != nil {
		return nil, fmt.Errorf("google: source language: %w", err)
	}
	target, err := language.Parse(config.TargetLang)
	if err != nil {
		return nil, fmt.Errorf("google: target language: %w", err)
	}

	if config.GoogleKey != "" {
		opts = append([]option.ClientOption{option.WithAPIKey(config.GoogleKey)}, opts...)
	}
	client, err := gtranslate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("google: create client: %w", err)
	}

	return &GoogleBackend{
		client: client,
		source: source,
		target: target,
		log:    logger.With("adapter", "google"),
	}, nil
}

// Translate sends a single word to the Translation API
func (b *GoogleBackend) Translate(ctx context.Context, word string) (Result, error) {
	failed := Result{Word: word, Outcome: OutcomeFailed}
	if strings.TrimSpace(word) == "" {
		return failed, ErrEmptyWord
	}

	b.log.DebugContext(ctx, "google request", slog.String("word", word), slog.String("target", b.target.String()))

	resp, err := b.client.Translate(ctx, []string{word}, b.target, &gtranslate.Options{
		Source: b.source,
		Format: gtranslate.Text,
	})
	if err != nil {
		return failed, fmt.Errorf("google: %w", err)
	}
	if len(resp) == 0 {
		return failed, fmt.Errorf("google: %w", ErrNoTranslation)
	}

	text := strings.TrimSpace(html.UnescapeString(resp[0].Text))
	if text == "" {
		return failed, fmt.Errorf("google: %w", ErrNoTranslation)
	}

	return Result{Word: word, Text: text, Outcome: OutcomeTrusted}, nil
}

// Close releases the underlying client
func (b *GoogleBackend) Close() error {
	return b.client.Close()
}
