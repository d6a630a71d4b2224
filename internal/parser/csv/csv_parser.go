// Package csv reads a delimited file into an in-memory Table. The whole input
// is buffered: the downstream mapper, writer, and reports all walk the same
// rows, and the district-level files this targets are a few MB at most.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("csv: input has no header row")

// Options configures the CSV parser behavior. All fields are optional; sensible
// defaults are applied when a field is zero.
type Options struct {
	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune

	// TrimSpace trims leading/trailing spaces from each data cell. Header
	// cells are always trimmed.
	TrimSpace bool
}

// Parser parses CSV input according to Options. It is safe to reuse across
// inputs, but Parser itself is not concurrency-safe.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// Parse reads the header and every data row from r. Rows whose width differs
// from the header are padded with empty cells or truncated so that the Table
// stays rectangular; the number of such rows is reported in Table.Ragged.
//
// The context is checked between rows so a long read can be abandoned.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*Table, error) {
	h := xxh3.New()
	cr := csv.NewReader(io.TeeReader(r, h))
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	header = normalizeHeaders(header)

	t := &Table{Header: header}
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if len(row) != len(header) {
			if t.Ragged < 20 {
				log.Printf("csv: line %d has %d fields, header has %d; aligning", line, len(row), len(header))
			}
			t.Ragged++
			row = align(row, len(header))
		}
		if p.opt.TrimSpace {
			for i := range row {
				row[i] = strings.TrimSpace(row[i])
			}
		}
		t.Rows = append(t.Rows, row)
	}

	t.Fingerprint = h.Sum64()
	return t, nil
}

// align pads row with empty cells or truncates it to width n.
func align(row []string, n int) []string {
	if len(row) > n {
		return row[:n]
	}
	out := make([]string, n)
	copy(out, row)
	return out
}

// normalizeHeaders trims header cells and strips a UTF-8 BOM from the first.
func normalizeHeaders(h []string) []string {
	h = StripHeaderBOM(h)
	res := make([]string, len(h))
	for i, col := range h {
		res[i] = strings.TrimSpace(col)
	}
	return res
}
