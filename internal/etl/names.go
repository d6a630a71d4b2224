package etl

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeName returns s in Unicode NFC with runs of whitespace collapsed to
// a single space and the ends trimmed, so "West  Bengal " and a decomposed
// spelling of the same name produce one master row.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
