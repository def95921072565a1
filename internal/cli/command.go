package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/dicttools/internal"
	"codeberg.org/snonux/dicttools/internal/dictionary"
	"codeberg.org/snonux/dicttools/internal/translation"
)

// ScanUsage is printed when findduplicates gets the wrong arguments
const ScanUsage = "usage: findduplicates <de|en>"

// CreateScanCommand creates the findduplicates root command
func CreateScanCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "findduplicates <lang>",
		Short: "Report duplicate words in a dictionary",
		Long: `findduplicates reads dictionaries/<lang>.txt and reports every word
that appears more than once, ignoring case. Each duplicate is shown
together with the previous line holding the same word.

Examples:
  findduplicates en                   # Check dictionaries/en.txt
  findduplicates --dir ./words de     # Check ./words/de.txt`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return dictionary.UsageError(ScanUsage)
			}
			return nil
		},
		Version:       internal.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.dicttools.yaml)")
	cmd.Flags().StringVar(&flags.DictDir, "dir", flags.DictDir, "Directory holding the <lang>.txt dictionaries")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Diagnostic log level: debug, info, warn, error")

	bindFlagsToViper(cmd)

	return cmd
}

// CreateTranslateCommand creates the translatedict root command
func CreateTranslateCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translatedict",
		Short: "Translate a dictionary into another language",
		Long: `translatedict reads dictionaries/<source>.txt, translates the first
column of every row and writes <target>.txt with the remaining columns
unchanged. Words that cannot be translated are left out and reported
on stderr.

Examples:
  translatedict                         # en -> de via MyMemory
  translatedict --source de --target en # Reverse direction
  translatedict --provider openai       # Use an OpenAI chat model
  translatedict --provider google       # Use Google Cloud Translation`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.dicttools.yaml)")

	cmd.Flags().StringVar(&flags.DictDir, "dir", flags.DictDir, "Directory holding the <lang>.txt dictionaries")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Diagnostic log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.SourceLang, "source", flags.SourceLang, "Source language code")
	cmd.Flags().StringVar(&flags.TargetLang, "target", flags.TargetLang, "Target language code")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Output file (default is <target>.txt)")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: mymemory, openai or google")
	cmd.Flags().BoolVar(&flags.UseCache, "cache", false, "Translate repeated words only once")
	cmd.Flags().BoolVar(&flags.KeepFailed, "keep-failed", false, "Write untranslated rows unchanged instead of dropping them")
	cmd.Flags().BoolVar(&flags.Backup, "backup", false, "Move an existing output file to archive/ before writing")
	cmd.Flags().StringVar(&flags.GlossaryFile, "glossary", "", "YAML file of fixed word translations used before the provider")
	cmd.Flags().Uint32Var(&flags.BreakerFailures, "breaker-failures", 0, "Stop calling the provider after this many consecutive failures (0 disables)")

	// MyMemory flags
	cmd.Flags().StringVar(&flags.APIURL, "api-url", flags.APIURL, "MyMemory API endpoint")
	cmd.Flags().StringVar(&flags.Email, "email", "", "Contact email sent to MyMemory for a larger daily quota")
	cmd.Flags().StringVar(&flags.UserAgent, "user-agent", flags.UserAgent, "User-Agent header sent with every request")
	cmd.Flags().StringVar(&flags.TrustedMarker, "trusted-marker", flags.TrustedMarker, "Prefer matches whose reference contains this text")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Per-request timeout (0 waits forever)")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used by the openai provider")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models and exit")

	bindFlagsToViper(cmd)

	return cmd
}

// flagKeys maps flag names to viper configuration keys
var flagKeys = map[string]string{
	"dir":              "dictionary.dir",
	"log-level":        "log.level",
	"source":           "translate.source",
	"target":           "translate.target",
	"output":           "translate.output",
	"provider":         "translate.provider",
	"cache":            "translate.cache",
	"keep-failed":      "translate.keep_failed",
	"backup":           "translate.backup",
	"glossary":         "translate.glossary",
	"breaker-failures": "translate.breaker_failures",
	"api-url":          "translate.api_url",
	"email":            "translate.email",
	"user-agent":       "translate.user_agent",
	"trusted-marker":   "translate.trusted_marker",
	"timeout":          "translate.timeout",
	"openai-model":     "translate.openai_model",
}

func bindFlagsToViper(cmd *cobra.Command) {
	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			viper.BindPFlag(key, flag)
		}
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".dicttools" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dicttools")
	}

	// Environment variables, e.g. DICTTOOLS_TRANSLATE_EMAIL
	viper.SetEnvPrefix("DICTTOOLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.openai_key")
}

// GetGoogleKey retrieves the Google Cloud Translation API key from
// environment or config. An empty key means Application Default Credentials.
func GetGoogleKey() string {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.google_key")
}

// DictDir returns the dictionary directory from flags or config
func DictDir(flags *Flags) string {
	if dir := viper.GetString("dictionary.dir"); dir != "" {
		return dir
	}
	return flags.DictDir
}

// LogLevel returns the diagnostic log level from flags or config
func LogLevel(flags *Flags) string {
	if level := viper.GetString("log.level"); level != "" {
		return level
	}
	return flags.LogLevel
}

// TranslationConfig resolves flags and configuration into a
// translation.Config. Flags set on the command line win over the config
// file, which wins over the flag defaults.
func TranslationConfig(flags *Flags) *translation.Config {
	cfg := translation.DefaultConfig()

	cfg.SourceLang = stringSetting("translate.source", flags.SourceLang)
	cfg.TargetLang = stringSetting("translate.target", flags.TargetLang)
	cfg.Provider = stringSetting("translate.provider", flags.Provider)
	cfg.APIURL = stringSetting("translate.api_url", flags.APIURL)
	cfg.Email = stringSetting("translate.email", flags.Email)
	cfg.UserAgent = stringSetting("translate.user_agent", flags.UserAgent)
	cfg.TrustedMarker = stringSetting("translate.trusted_marker", flags.TrustedMarker)
	cfg.OpenAIModel = stringSetting("translate.openai_model", flags.OpenAIModel)
	cfg.OpenAIKey = GetOpenAIKey()
	cfg.GoogleKey = GetGoogleKey()
	cfg.GlossaryFile = stringSetting("translate.glossary", flags.GlossaryFile)

	cfg.Timeout = flags.Timeout
	if viper.IsSet("translate.timeout") {
		cfg.Timeout = viper.GetDuration("translate.timeout")
	}
	cfg.BreakerFailures = flags.BreakerFailures
	if viper.IsSet("translate.breaker_failures") {
		cfg.BreakerFailures = viper.GetUint32("translate.breaker_failures")
	}

	return cfg
}

// OutputFile returns the translated dictionary path
func OutputFile(flags *Flags, cfg *translation.Config) string {
	if out := stringSetting("translate.output", flags.OutputFile); out != "" {
		return out
	}
	return cfg.TargetLang + ".txt"
}

// BoolSetting returns a boolean from config, falling back to the flag value
func BoolSetting(key string, flagValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return flagValue
}

func stringSetting(key, flagValue string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return flagValue
}

// ErrorMessage formats an error for the terminal. Usage errors are shown
// as the bare usage line.
func ErrorMessage(err error) string {
	if errors.Is(err, dictionary.ErrUsage) {
		return err.Error()
	}
	return "Error: " + err.Error()
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
