package cli

import (
	"reflect"
	"testing"
	"time"

	"codeberg.org/snonux/dicttools/internal/translation"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"DictDir", flags.DictDir, "dictionaries"},
		{"LogLevel", flags.LogLevel, "warn"},
		{"SourceLang", flags.SourceLang, "en"},
		{"TargetLang", flags.TargetLang, "de"},
		{"Provider", flags.Provider, translation.ProviderMyMemory},
		{"APIURL", flags.APIURL, translation.DefaultAPIURL},
		{"UserAgent", flags.UserAgent, translation.DefaultUserAgent},
		{"TrustedMarker", flags.TrustedMarker, "Google"},
		{"OpenAIModel", flags.OpenAIModel, translation.DefaultOpenAIModel},
		{"Timeout", flags.Timeout, time.Duration(0)},
		{"BreakerFailures", flags.BreakerFailures, uint32(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"UseCache", flags.UseCache},
		{"KeepFailed", flags.KeepFailed},
		{"Backup", flags.Backup},
		{"ListModels", flags.ListModels},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"OutputFile", flags.OutputFile},
		{"Email", flags.Email},
		{"GlossaryFile", flags.GlossaryFile},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}
