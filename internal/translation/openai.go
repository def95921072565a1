package translation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// OpenAIBackend translates words with an OpenAI chat model
type OpenAIBackend struct {
	config *Config
	client *openai.Client
	log    *slog.Logger
}

// NewOpenAIBackend creates an OpenAI backend
func NewOpenAIBackend(config *Config, logger *slog.Logger) *OpenAIBackend {
	return newOpenAIBackend(config, openai.NewClient(config.OpenAIKey), logger)
}

func newOpenAIBackend(config *Config, client *openai.Client, logger *slog.Logger) *OpenAIBackend {
	return &OpenAIBackend{
		config: config,
		client: client,
		log:    logger.With("adapter", "openai"),
	}
}

// Translate asks the model for a single-word translation
func (b *OpenAIBackend) Translate(ctx context.Context, word string) (Result, error) {
	failed := Result{Word: word, Outcome: OutcomeFailed}

	if b.config.OpenAIKey == "" {
		return failed, fmt.Errorf("OpenAI API key not found")
	}
	if strings.TrimSpace(word) == "" {
		return failed, ErrEmptyWord
	}

	req := openai.ChatCompletionRequest{
		Model: b.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the %s word '%s' to %s. Respond with only the %s translation, nothing else.",
					languageName(b.config.SourceLang), word,
					languageName(b.config.TargetLang), languageName(b.config.TargetLang)),
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	b.log.DebugContext(ctx, "openai request", slog.String("word", word), slog.String("model", req.Model))

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return failed, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return failed, ErrNoTranslation
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return failed, ErrNoTranslation
	}

	return Result{Word: word, Text: text, Outcome: OutcomeModel}, nil
}

// languageName turns a code such as "de" into "German"
func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
