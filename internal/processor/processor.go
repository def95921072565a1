package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"codeberg.org/snonux/dicttools/internal/archive"
	"codeberg.org/snonux/dicttools/internal/cli"
	"codeberg.org/snonux/dicttools/internal/dictionary"
	"codeberg.org/snonux/dicttools/internal/translation"
)

// Summary counts the rows of a translation run
type Summary struct {
	Total      int
	Translated int
	Trusted    int
	Fallback   int
	Model      int
	Glossary   int
	Failed     int
}

func (s *Summary) add(outcome translation.Outcome) {
	s.Translated++
	switch outcome {
	case translation.OutcomeTrusted:
		s.Trusted++
	case translation.OutcomeFallback:
		s.Fallback++
	case translation.OutcomeModel:
		s.Model++
	case translation.OutcomeGlossary:
		s.Glossary++
	}
}

// Processor handles the main dictionary translation logic
type Processor struct {
	config  *translation.Config
	backend translation.Backend
	cache   *translation.TranslationCache
	logger  *slog.Logger

	dictDir    string
	outputFile string
	keepFailed bool
	backup     bool

	stdout io.Writer
	stderr io.Writer
}

// NewProcessor creates a processor for the backend selected by config
func NewProcessor(ctx context.Context, flags *cli.Flags, config *translation.Config, logger *slog.Logger) (*Processor, error) {
	backend, err := translation.NewBackend(ctx, config, logger)
	if err != nil {
		return nil, err
	}
	return NewProcessorWithBackend(flags, config, backend, logger), nil
}

// NewProcessorWithBackend creates a processor that translates with backend
func NewProcessorWithBackend(flags *cli.Flags, config *translation.Config, backend translation.Backend, logger *slog.Logger) *Processor {
	p := &Processor{
		config:     config,
		backend:    backend,
		logger:     logger,
		dictDir:    cli.DictDir(flags),
		outputFile: cli.OutputFile(flags, config),
		keepFailed: cli.BoolSetting("translate.keep_failed", flags.KeepFailed),
		backup:     cli.BoolSetting("translate.backup", flags.Backup),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}

	if cli.BoolSetting("translate.cache", flags.UseCache) {
		p.cache = translation.NewTranslationCache()
		p.backend = translation.NewCachingBackend(backend, p.cache)
	}

	return p
}

// SetOutput redirects progress and failure messages
func (p *Processor) SetOutput(stdout, stderr io.Writer) {
	p.stdout = stdout
	p.stderr = stderr
}

// InputFile returns the source dictionary path
func (p *Processor) InputFile() string {
	return dictionary.Path(p.dictDir, p.config.SourceLang)
}

// OutputFile returns the translated dictionary path
func (p *Processor) OutputFile() string {
	return p.outputFile
}

// Run translates the source dictionary into the output file and prints
// the summary. The backend is closed afterwards.
func (p *Processor) Run(ctx context.Context) (*Summary, error) {
	summary, err := p.run(ctx)
	if cerr := translation.Close(p.backend); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close translation backend: %w", cerr)
	}
	return summary, err
}

func (p *Processor) run(ctx context.Context) (*Summary, error) {
	inputFile := p.InputFile()
	in, err := dictionary.Open(inputFile)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	// os.Create would truncate the dictionary being read
	if sameFile(inputFile, p.outputFile) {
		return nil, fmt.Errorf("output file %s is the input dictionary", p.outputFile)
	}

	if p.backup {
		archived, err := archive.ArchiveFile(p.outputFile)
		if err != nil {
			return nil, err
		}
		if archived != "" {
			fmt.Fprintf(p.stdout, "Previous output archived to: %s\n", archived)
		}
	}

	if dir := filepath.Dir(p.outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(p.outputFile)
	if err != nil {
		return nil, &dictionary.Error{Kind: dictionary.KindIO, Path: p.outputFile, Msg: "cannot create output file", Err: err}
	}

	p.logger.Info("translating dictionary",
		"input", inputFile,
		"output", p.outputFile,
		"langpair", p.config.LangPair(),
		"provider", p.config.Provider)

	summary, err := p.TranslateRows(ctx, in, out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = &dictionary.Error{Kind: dictionary.KindIO, Path: p.outputFile, Err: cerr}
	}
	if err != nil {
		var de *dictionary.Error
		if errors.As(err, &de) && de.Path == "" && de.Kind == dictionary.KindDecode {
			de.Path = inputFile
		}
		return summary, err
	}

	p.PrintSummary(summary)
	return summary, nil
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}

// TranslateRows translates every row read from r and writes the results
// to w. A word that cannot be translated is reported and skipped, or
// written unchanged when keep-failed is set. Only read, write and
// cancellation errors stop the run.
func (p *Processor) TranslateRows(ctx context.Context, r io.Reader, w io.Writer) (*Summary, error) {
	writer := dictionary.NewRowWriter(w)
	summary := &Summary{}

	err := dictionary.ReadRows(r, func(lineNo int, row []string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		summary.Total++

		word := row[0]
		result, err := p.backend.Translate(ctx, word)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			summary.Failed++
			fmt.Fprintf(p.stderr, "Could not translate '%s'\n", word)
			p.logger.Warn("translation failed", "line", lineNo, "word", word, "error", err)

			if p.keepFailed {
				return p.writeRow(writer, row)
			}
			return nil
		}

		summary.add(result.Outcome)
		fmt.Fprintf(p.stdout, "%s -> %s\n", word, result.Text)
		p.logger.Debug("translated", "line", lineNo, "word", word, "outcome", result.Outcome.String())

		translated := make([]string, 0, len(row))
		translated = append(translated, result.Text)
		translated = append(translated, row[1:]...)
		return p.writeRow(writer, translated)
	})

	return summary, err
}

func (p *Processor) writeRow(writer *dictionary.RowWriter, row []string) error {
	if err := writer.Write(row); err != nil {
		return &dictionary.Error{Kind: dictionary.KindIO, Path: p.outputFile, Msg: "cannot write row", Err: err}
	}
	return nil
}

// PrintSummary prints the run statistics
func (p *Processor) PrintSummary(s *Summary) {
	fmt.Fprintf(p.stdout, "\n=== Translation Summary ===\n")
	fmt.Fprintf(p.stdout, "Total words: %d\n", s.Total)
	fmt.Fprintf(p.stdout, "Translated: %d\n", s.Translated)
	if s.Trusted > 0 {
		fmt.Fprintf(p.stdout, "  trusted source: %d\n", s.Trusted)
	}
	if s.Fallback > 0 {
		fmt.Fprintf(p.stdout, "  fallback: %d\n", s.Fallback)
	}
	if s.Model > 0 {
		fmt.Fprintf(p.stdout, "  model: %d\n", s.Model)
	}
	if s.Glossary > 0 {
		fmt.Fprintf(p.stdout, "  glossary: %d\n", s.Glossary)
	}
	if s.Failed > 0 {
		fmt.Fprintf(p.stdout, "Failed: %d\n", s.Failed)
	}
	if p.cache != nil {
		fmt.Fprintf(p.stdout, "Cached words: %d\n", p.cache.Len())
	}
	fmt.Fprintf(p.stdout, "===========================\n")
}
