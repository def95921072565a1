package cli

import (
	"time"

	"codeberg.org/snonux/dicttools/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	DictDir  string
	LogLevel string

	// Translation flags
	SourceLang      string
	TargetLang      string
	OutputFile      string
	Provider        string
	APIURL          string
	Email           string
	UserAgent       string
	TrustedMarker   string
	Timeout         time.Duration
	OpenAIModel     string
	GlossaryFile    string
	BreakerFailures uint32
	UseCache        bool
	KeepFailed      bool
	Backup          bool

	// Other flags
	ListModels bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	defaults := translation.DefaultConfig()
	return &Flags{
		DictDir:       "dictionaries",
		LogLevel:      "warn",
		SourceLang:    defaults.SourceLang,
		TargetLang:    defaults.TargetLang,
		Provider:      defaults.Provider,
		APIURL:        defaults.APIURL,
		UserAgent:     defaults.UserAgent,
		TrustedMarker: defaults.TrustedMarker,
		OpenAIModel:   defaults.OpenAIModel,
	}
}
