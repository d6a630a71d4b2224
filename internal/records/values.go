package records

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quantity is a non-negative-or-zero measure such as area, production, or
// yield. Blank and not-a-number cells decode to zero so no NULL measure ever
// reaches the fact table.
type Quantity float64

// UnmarshalCSV implements csvutil.Unmarshaler.
func (q *Quantity) UnmarshalCSV(b []byte) error {
	s := strings.TrimSpace(string(b))
	if isBlank(s) {
		*q = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("quantity %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	*q = Quantity(f)
	return nil
}

// Code is an integer identifier (state code, district code, year). Sources
// exported through spreadsheets sometimes write these as "17.0", which is
// accepted as long as the fractional part is zero.
type Code int64

// UnmarshalCSV implements csvutil.Unmarshaler. Unlike Quantity, a blank
// Code is an error: identifiers have no sensible default.
func (c *Code) UnmarshalCSV(b []byte) error {
	s := strings.TrimSpace(string(b))
	if isBlank(s) {
		return fmt.Errorf("code: empty value")
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		*c = Code(i)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("code %q: not an integer", s)
	}
	// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
	if f >= -math.MinInt64 || f < math.MinInt64 {
		return fmt.Errorf("code %q: out of range", s)
	}
	*c = Code(f)
	return nil
}

// isBlank reports whether s is one of the spellings used for a missing value.
func isBlank(s string) bool {
	switch strings.ToLower(s) {
	case "", "nan", "na", "n/a", "null", "-":
		return true
	}
	return false
}
