package dictionary

import (
	"encoding/csv"
	"errors"
	"io"
)

// ReadRows reads comma-separated rows from r and calls fn for each of
// them. Rows may carry any number of fields and quoted fields are
// honoured. Empty lines are skipped.
func ReadRows(r io.Reader, fn func(lineNo int, row []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	for {
		row, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return &Error{Kind: KindDecode, Line: perr.Line, Msg: "malformed row", Err: perr.Err}
			}
			return &Error{Kind: KindIO, Err: err}
		}

		line, _ := cr.FieldPos(0)
		if err := fn(line, row); err != nil {
			return err
		}
	}
}

// RowWriter writes dictionary rows
type RowWriter struct {
	w *csv.Writer
}

// NewRowWriter creates a RowWriter with LF line endings
func NewRowWriter(w io.Writer) *RowWriter {
	return &RowWriter{w: csv.NewWriter(w)}
}

// Write writes a single row and flushes it
func (rw *RowWriter) Write(row []string) error {
	if err := rw.w.Write(row); err != nil {
		return err
	}
	rw.w.Flush()
	return rw.w.Error()
}
