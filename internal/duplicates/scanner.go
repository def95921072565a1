// Package duplicates finds repeated keys in a dictionary file.
package duplicates

import (
	"errors"
	"fmt"
	"io"

	"codeberg.org/snonux/dicttools/internal/dictionary"
)

// Occurrence is a line at which a key was seen
type Occurrence struct {
	LineNo int
	Raw    string
}

// Duplicate pairs a repeated key with its previous occurrence
type Duplicate struct {
	Seq      int // 1-based
	Key      string
	Previous Occurrence
	Current  Occurrence
}

// Report is the outcome of a scan
type Report struct {
	Lines      int // every line read, including skipped ones
	Duplicates []Duplicate
}

// Count returns the number of duplicates found
func (r *Report) Count() int {
	return len(r.Duplicates)
}

// Scanner detects duplicate keys. Each duplicate is compared against the
// most recent occurrence of its key, not the first one.
type Scanner struct {
	// OnDuplicate, when set, is called as soon as a duplicate is found
	OnDuplicate func(Duplicate)
}

// NewScanner creates a scanner that streams duplicates to fn
func NewScanner(fn func(Duplicate)) *Scanner {
	return &Scanner{OnDuplicate: fn}
}

// Scan reads a dictionary from r. On a decode error the report still
// holds everything found before the failing line.
func (s *Scanner) Scan(r io.Reader) (*Report, error) {
	report := &Report{}
	seen := make(map[string]Occurrence)

	lines, err := dictionary.ReadLines(r, func(lineNo int, line string) error {
		entry, ok := dictionary.ParseLine(lineNo, line)
		if !ok {
			return nil
		}

		key := entry.Key()
		current := Occurrence{LineNo: entry.LineNo, Raw: entry.Raw}
		if prev, exists := seen[key]; exists {
			d := Duplicate{
				Seq:      len(report.Duplicates) + 1,
				Key:      key,
				Previous: prev,
				Current:  current,
			}
			report.Duplicates = append(report.Duplicates, d)
			if s.OnDuplicate != nil {
				s.OnDuplicate(d)
			}
		}
		seen[key] = current
		return nil
	})
	report.Lines = lines

	return report, err
}

// ScanFile scans the dictionary at path
func (s *Scanner) ScanFile(path string) (*Report, error) {
	f, err := dictionary.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	report, err := s.Scan(f)
	if err != nil {
		var de *dictionary.Error
		if errors.As(err, &de) && de.Path == "" {
			de.Path = path
		}
		return report, err
	}
	return report, nil
}

// WriteDuplicate prints a duplicate with both of its lines
func WriteDuplicate(w io.Writer, d Duplicate) error {
	_, err := fmt.Fprintf(w, "duplicate #%d:\n  %5d: %s\n  %5d: %s\n",
		d.Seq, d.Previous.LineNo, d.Previous.Raw, d.Current.LineNo, d.Current.Raw)
	return err
}

// WriteSummary prints the line and duplicate totals
func WriteSummary(w io.Writer, r *Report) error {
	_, err := fmt.Fprintf(w, "%d words, %d duplicates\n", r.Lines, r.Count())
	return err
}
