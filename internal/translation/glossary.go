package translation

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/dicttools/internal/dictionary"
)

// Glossary maps dictionary keys to fixed translations
type Glossary map[string]string

// LoadGlossary reads a YAML mapping of word: translation. Words are
// matched case-insensitively.
func LoadGlossary(path string) (Glossary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open glossary file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("could not unmarshal glossary file: %w", err)
	}

	g := make(Glossary, len(raw))
	for word, text := range raw {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		g[dictionary.Key(strings.TrimSpace(word))] = text
	}
	return g, nil
}

// Lookup returns the fixed translation for word
func (g Glossary) Lookup(word string) (string, bool) {
	text, ok := g[dictionary.Key(strings.TrimSpace(word))]
	return text, ok
}

// GlossaryBackend answers glossary words itself and passes everything
// else on to the wrapped backend
type GlossaryBackend struct {
	backend  Backend
	glossary Glossary
}

// NewGlossaryBackend wraps backend with glossary
func NewGlossaryBackend(backend Backend, glossary Glossary) *GlossaryBackend {
	return &GlossaryBackend{backend: backend, glossary: glossary}
}

// Translate implements Backend
func (g *GlossaryBackend) Translate(ctx context.Context, word string) (Result, error) {
	if text, ok := g.glossary.Lookup(word); ok {
		return Result{Word: word, Text: text, Outcome: OutcomeGlossary}, nil
	}
	return g.backend.Translate(ctx, word)
}

// Close closes the wrapped backend
func (g *GlossaryBackend) Close() error {
	return Close(g.backend)
}
