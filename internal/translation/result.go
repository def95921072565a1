package translation

import (
	"errors"
	"strings"
)

// Outcome tells which branch of the fallback policy produced a result
type Outcome int

const (
	OutcomeFailed Outcome = iota
	// OutcomeTrusted is a match from the trusted provider
	OutcomeTrusted
	// OutcomeFallback is the service's generic translated text
	OutcomeFallback
	// OutcomeModel is a chat model answer
	OutcomeModel
	// OutcomeGlossary is a fixed translation from the glossary file
	OutcomeGlossary
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTrusted:
		return "trusted"
	case OutcomeFallback:
		return "fallback"
	case OutcomeModel:
		return "model"
	case OutcomeGlossary:
		return "glossary"
	default:
		return "failed"
	}
}

var (
	ErrNoTranslation     = errors.New("no translation in response")
	ErrMalformedResponse = errors.New("malformed translation response")
	ErrUnexpectedStatus  = errors.New("unexpected status from translation service")
	ErrEmptyWord         = errors.New("empty word")
)

// Result is a translated word
type Result struct {
	Word    string
	Text    string
	Outcome Outcome
}

// memoryResponse mirrors the fields of a MyMemory reply the policy needs.
// Pointers distinguish absent fields from empty ones.
type memoryResponse struct {
	ResponseData *memoryResponseData `json:"responseData"`
	Matches      *[]memoryMatch      `json:"matches"`
}

type memoryResponseData struct {
	TranslatedText *string `json:"translatedText"`
}

type memoryMatch struct {
	Reference   string `json:"reference"`
	Translation string `json:"translation"`
}

// selectTranslation applies the fallback policy to a decoded response:
// the first match whose reference contains marker, then the generic
// translated text, then failure. An empty translation counts as absent
// in both places.
func selectTranslation(word string, resp *memoryResponse, marker string) (Result, error) {
	failed := Result{Word: word, Outcome: OutcomeFailed}

	if resp == nil || resp.Matches == nil {
		return failed, ErrMalformedResponse
	}

	if marker != "" {
		for _, m := range *resp.Matches {
			if strings.Contains(m.Reference, marker) && strings.TrimSpace(m.Translation) != "" {
				return Result{Word: word, Text: m.Translation, Outcome: OutcomeTrusted}, nil
			}
		}
	}

	if resp.ResponseData == nil || resp.ResponseData.TranslatedText == nil {
		return failed, ErrMalformedResponse
	}
	if strings.TrimSpace(*resp.ResponseData.TranslatedText) == "" {
		return failed, ErrNoTranslation
	}

	return Result{Word: word, Text: *resp.ResponseData.TranslatedText, Outcome: OutcomeFallback}, nil
}
