package dictionary

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator delimits the fields of a dictionary line
const Separator = ","

// Entry is a well-formed dictionary line
type Entry struct {
	LineNo int      // 1-based, counting skipped lines
	Raw    string   // the line with surrounding whitespace trimmed
	Fields []string // always two fields
}

// Key returns the entry key used for duplicate detection
func (e Entry) Key() string {
	return Key(e.Fields[0])
}

// Key case-folds a word into an entry key
func Key(word string) string {
	// A Caser keeps state between calls, so each key gets its own.
	return cases.Lower(language.Und).String(word)
}

// Path returns the location of the dictionary for a language code
func Path(dir, lang string) string {
	return filepath.Join(dir, lang+".txt")
}

// ParseLine splits a raw line into an Entry. Lines that do not hold
// exactly two comma-separated fields are rejected.
func ParseLine(lineNo int, raw string) (Entry, bool) {
	line := strings.TrimSpace(raw)
	fields := strings.Split(line, Separator)
	if len(fields) != 2 {
		return Entry{}, false
	}
	return Entry{LineNo: lineNo, Raw: line, Fields: fields}, true
}

// Open opens a dictionary file, classifying failures
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &Error{Kind: KindNotFound, Path: path, Err: err}
	}
	return nil, &Error{Kind: KindIO, Path: path, Err: err}
}

// ReadLines calls fn for every line of r with its 1-based line number.
// Line terminators are stripped. A line that is not valid UTF-8 stops the
// read with a KindDecode error. It returns the number of lines read.
func ReadLines(r io.Reader, fn func(lineNo int, line string) error) (int, error) {
	br := bufio.NewReader(r)
	lineNo := 0

	for {
		line, err := br.ReadString('\n')
		if line == "" && err == io.EOF {
			return lineNo, nil
		}
		if err != nil && err != io.EOF {
			return lineNo, &Error{Kind: KindIO, Line: lineNo + 1, Err: err}
		}

		lineNo++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if !utf8.ValidString(line) {
			return lineNo, &Error{Kind: KindDecode, Line: lineNo}
		}

		if ferr := fn(lineNo, line); ferr != nil {
			return lineNo, ferr
		}

		if err == io.EOF {
			return lineNo, nil
		}
	}
}
