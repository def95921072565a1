package testutil

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/snonux/dicttools/internal/translation"
)

// MockBackend mocks a translation backend for testing
type MockBackend struct {
	Results map[string]translation.Result
	Errors  map[string]error
	Calls   []string
	Closed  int
}

// NewMockBackend creates a MockBackend with empty response tables
func NewMockBackend() *MockBackend {
	return &MockBackend{
		Results: make(map[string]translation.Result),
		Errors:  make(map[string]error),
	}
}

// Translate mocks a single word translation. Words without a registered
// result fail with translation.ErrNoTranslation.
func (m *MockBackend) Translate(ctx context.Context, word string) (translation.Result, error) {
	m.Calls = append(m.Calls, word)

	if err := ctx.Err(); err != nil {
		return translation.Result{Word: word}, err
	}

	if err, ok := m.Errors[word]; ok {
		return translation.Result{Word: word}, err
	}

	if result, ok := m.Results[word]; ok {
		result.Word = word
		return result, nil
	}

	return translation.Result{Word: word}, fmt.Errorf("mock: %w", translation.ErrNoTranslation)
}

// Trusted registers a trusted-provider translation for word
func (m *MockBackend) Trusted(word, text string) *MockBackend {
	m.Results[word] = translation.Result{Text: text, Outcome: translation.OutcomeTrusted}
	return m
}

// Fallback registers a generic translation for word
func (m *MockBackend) Fallback(word, text string) *MockBackend {
	m.Results[word] = translation.Result{Text: text, Outcome: translation.OutcomeFallback}
	return m
}

// Fail makes the translation of word fail with err
func (m *MockBackend) Fail(word string, err error) *MockBackend {
	if err == nil {
		err = errors.New("mock failure")
	}
	m.Errors[word] = err
	return m
}

// CallCount returns how often word was translated
func (m *MockBackend) CallCount(word string) int {
	n := 0
	for _, call := range m.Calls {
		if call == word {
			n++
		}
	}
	return n
}

// Close counts how often the backend was closed
func (m *MockBackend) Close() error {
	m.Closed++
	return nil
}
