package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrNoAPIKey is returned when no OpenAI API key is configured
var ErrNoAPIKey = errors.New("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure translate.openai_key in .dicttools.yaml")

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
	out    io.Writer
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return newLister(apiKey, openai.NewClient(apiKey), os.Stdout)
}

func newLister(apiKey string, client *openai.Client, out io.Writer) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: client,
		out:    out,
	}
}

// ChatModels returns the sorted IDs of all chat models
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var chatModels []string
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)

	return chatModels, nil
}

// ListAvailableModels prints the chat models usable with --provider openai
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	chatModels, err := l.ChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(l.out, "Chat/Translation Models (use with --provider openai --openai-model):")
	if len(chatModels) == 0 {
		fmt.Fprintln(l.out, "  No chat models found")
		return nil
	}
	for _, model := range chatModels {
		fmt.Fprintf(l.out, "  %s\n", model)
	}

	return nil
}

// isChatModel drops audio, image and realtime variants
func isChatModel(id string) bool {
	if !strings.Contains(id, "gpt") && !strings.Contains(id, "chat") {
		return false
	}
	for _, skip := range []string{"tts", "audio", "realtime", "transcribe", "image", "search"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return true
}
