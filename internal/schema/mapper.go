package schema

import (
	"errors"
	"fmt"
	"strings"

	csvparser "agrietl/internal/parser/csv"
)

// ErrColumnMismatch is returned by Map under PolicyStrict when the renamed
// source columns differ from ExpectedColumns.
var ErrColumnMismatch = errors.New("schema: column mismatch")

// ColumnPolicy decides what a column mismatch does to the run.
type ColumnPolicy string

const (
	// PolicyWarn reports mismatches and continues; missing columns load as zero.
	PolicyWarn ColumnPolicy = "warn"
	// PolicyStrict turns any mismatch into ErrColumnMismatch.
	PolicyStrict ColumnPolicy = "strict"
)

// ParsePolicy parses a policy name; the empty string means PolicyWarn.
func ParsePolicy(s string) (ColumnPolicy, error) {
	switch ColumnPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyWarn:
		return PolicyWarn, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("unknown column policy %q (want %q or %q)", s, PolicyWarn, PolicyStrict)
	}
}

// ColumnReport is the difference between the renamed source header and the
// canonical column set.
type ColumnReport struct {
	// Missing lists canonical columns absent from the source, in canonical order.
	Missing []string
	// Extra lists source columns (after renaming) that are not canonical, in
	// source order. A canonical name that appears twice is listed here too.
	Extra []string
}

// OK reports whether the column sets match exactly.
func (r ColumnReport) OK() bool { return len(r.Missing) == 0 && len(r.Extra) == 0 }

// Rename maps each header cell through HeaderMap. Cells without a mapping
// pass through unchanged, so already-canonical headers are accepted.
func Rename(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if m, ok := HeaderMap[h]; ok {
			out[i] = m
			continue
		}
		out[i] = h
	}
	return out
}

// Compare diffs a renamed header against ExpectedColumns.
func Compare(columns []string) ColumnReport {
	expected := ExpectedColumns()
	want := make(map[string]struct{}, len(expected))
	for _, c := range expected {
		want[c] = struct{}{}
	}

	var rep ColumnReport
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			rep.Extra = append(rep.Extra, c)
			continue
		}
		seen[c] = struct{}{}
		if _, ok := want[c]; !ok {
			rep.Extra = append(rep.Extra, c)
		}
	}
	for _, c := range expected {
		if _, ok := seen[c]; !ok {
			rep.Missing = append(rep.Missing, c)
		}
	}
	return rep
}

// Map renames the table header, diffs it against the canonical column set,
// and returns a new table whose columns are exactly ExpectedColumns in
// canonical order. Extra columns are dropped; missing columns become empty
// cells, which decode as zero. The input table is not modified.
//
// Under PolicyStrict a mismatch returns ErrColumnMismatch together with the
// report and no table.
func Map(t *csvparser.Table, policy ColumnPolicy) (*csvparser.Table, ColumnReport, error) {
	renamed := Rename(t.Header)
	rep := Compare(renamed)
	if !rep.OK() && policy == PolicyStrict {
		return nil, rep, fmt.Errorf("%w: missing=%v extra=%v", ErrColumnMismatch, rep.Missing, rep.Extra)
	}

	pos := make(map[string]int, len(renamed))
	for i, c := range renamed {
		if _, ok := pos[c]; !ok {
			pos[c] = i
		}
	}

	expected := ExpectedColumns()
	src := make([]int, len(expected))
	for i, c := range expected {
		if p, ok := pos[c]; ok {
			src[i] = p
		} else {
			src[i] = -1
		}
	}

	out := &csvparser.Table{
		Header:      expected,
		Rows:        make([][]string, len(t.Rows)),
		Fingerprint: t.Fingerprint,
		Ragged:      t.Ragged,
	}
	for r, row := range t.Rows {
		nr := make([]string, len(expected))
		for i, p := range src {
			if p >= 0 && p < len(row) {
				nr[i] = row[p]
			}
		}
		out.Rows[r] = nr
	}
	return out, rep, nil
}
