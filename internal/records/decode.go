// Package records decodes a schema-mapped table into typed Record values.
package records

import (
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	csvparser "agrietl/internal/parser/csv"
)

// DecodeError describes a source row that could not be decoded. Line is the
// 1-based line in the source file (the header is line 1).
type DecodeError struct {
	Line int
	Err  error
}

func (e DecodeError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e DecodeError) Unwrap() error { return e.Err }

// tableReader adapts a Table's rows to csvutil.Reader.
type tableReader struct {
	rows [][]string
	next int
}

func (r *tableReader) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.next]
	r.next++
	return row, nil
}

// Decode converts every row of a mapped table into a Record, preserving row
// order. Rows that fail to decode (typically a non-numeric identifier) are
// returned as DecodeErrors and left out of the result. The table header must
// contain every column tagged on Record, which schema.Map guarantees.
func Decode(t *csvparser.Table) ([]Record, []DecodeError, error) {
	dec, err := csvutil.NewDecoder(&tableReader{rows: t.Rows}, t.Header...)
	if err != nil {
		return nil, nil, fmt.Errorf("records: new decoder: %w", err)
	}
	dec.DisallowMissingColumns = true

	out := make([]Record, 0, len(t.Rows))
	var bad []DecodeError
	for line := 2; ; line++ {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var missing *csvutil.MissingColumnsError
			if errors.As(err, &missing) {
				return nil, nil, fmt.Errorf("records: %w", err)
			}
			bad = append(bad, DecodeError{Line: line, Err: err})
			continue
		}
		out = append(out, rec)
	}
	return out, bad, nil
}
