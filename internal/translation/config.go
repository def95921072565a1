package translation

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

const (
	ProviderMyMemory = "mymemory"
	ProviderOpenAI   = "openai"
	ProviderGoogle   = "google"
)

const (
	DefaultAPIURL        = "https://api.mymemory.translated.net/get"
	DefaultUserAgent     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_10_1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/39.0.2171.95 Safari/537.36"
	DefaultTrustedMarker = "Google"
	DefaultOpenAIModel   = "gpt-4o-mini"
)

// Config describes a translation run's language pair and backend
type Config struct {
	SourceLang string
	TargetLang string

	Provider string

	// MyMemory settings
	APIURL        string
	Email         string // sent as the "de" parameter for a higher daily quota
	UserAgent     string
	TrustedMarker string        // substring of a match reference that marks a preferred provider
	Timeout       time.Duration // zero waits forever

	// OpenAI settings
	OpenAIKey   string
	OpenAIModel string

	// Google Cloud Translation settings
	GoogleKey string

	// GlossaryFile names a YAML file of fixed translations
	GlossaryFile string

	// BreakerFailures opens a circuit breaker after that many consecutive
	// failures. Zero disables the breaker.
	BreakerFailures uint32
}

// DefaultConfig returns the English to German MyMemory setup
func DefaultConfig() *Config {
	return &Config{
		SourceLang:    "en",
		TargetLang:    "de",
		Provider:      ProviderMyMemory,
		APIURL:        DefaultAPIURL,
		UserAgent:     DefaultUserAgent,
		TrustedMarker: DefaultTrustedMarker,
		OpenAIModel:   DefaultOpenAIModel,
	}
}

// LangPair returns the pair in MyMemory's "src|tgt" notation
func (c *Config) LangPair() string {
	return c.SourceLang + "|" + c.TargetLang
}

// Validate checks that the configuration can drive a backend
func (c *Config) Validate() error {
	if c.SourceLang == "" || c.TargetLang == "" {
		return fmt.Errorf("source and target language are required")
	}
	if c.SourceLang == c.TargetLang {
		return fmt.Errorf("source and target language are both %q", c.SourceLang)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	switch c.Provider {
	case ProviderMyMemory:
		if c.APIURL == "" {
			return fmt.Errorf("MyMemory API URL is required")
		}
	case ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OpenAI API key not found")
		}
	case ProviderGoogle:
		for _, code := range []string{c.SourceLang, c.TargetLang} {
			if _, err := language.Parse(code); err != nil {
				return fmt.Errorf("invalid language code %q: %w", code, err)
			}
		}
	default:
		return fmt.Errorf("unknown translation provider: %s", c.Provider)
	}

	return nil
}
