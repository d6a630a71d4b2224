package csv

// Table is a fully buffered delimited file: one header row plus data rows.
// Every row has exactly len(Header) cells once produced by Parser.Parse.
type Table struct {
	Header []string
	Rows   [][]string

	// Fingerprint is the xxh3 digest of the raw input bytes.
	Fingerprint uint64

	// Ragged counts rows that were padded or truncated to the header width.
	Ragged int
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }
