// Package report aggregates loaded records and renders the fixed chart
// catalogue to PNG files, with an optional XLSX workbook of the same series.
package report

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"agrietl/internal/records"
)

// Pair is one category of an aggregation.
type Pair struct {
	Key   string
	Value float64
}

// Point is one year of a time series.
type Point struct {
	Year  int64
	Value float64
}

// KeyFunc selects the grouping key of a record.
type KeyFunc func(records.Record) string

// Measure selects a numeric field of a record.
type Measure func(records.Record) float64

// Grouping keys.
var (
	ByState    KeyFunc = func(r records.Record) string { return strings.TrimSpace(r.StateName) }
	ByDistrict KeyFunc = func(r records.Record) string { return strings.TrimSpace(r.DistName) }
	ByYear     KeyFunc = func(r records.Record) string { return strconv.FormatInt(int64(r.Year), 10) }
)

// GroupSum sums m per key. The result is ordered by key.
func GroupSum(recs []records.Record, key KeyFunc, m Measure) []Pair {
	return group(recs, key, m, func(acc, v float64) float64 { return acc + v })
}

// GroupMax takes the maximum of m per key. The result is ordered by key.
func GroupMax(recs []records.Record, key KeyFunc, m Measure) []Pair {
	return group(recs, key, m, func(acc, v float64) float64 {
		if v > acc {
			return v
		}
		return acc
	})
}

func group(recs []records.Record, key KeyFunc, m Measure, fold func(acc, v float64) float64) []Pair {
	idx := make(map[string]int)
	var out []Pair
	for _, r := range recs {
		k := key(r)
		v := m(r)
		if i, ok := idx[k]; ok {
			out[i].Value = fold(out[i].Value, v)
			continue
		}
		idx[k] = len(out)
		out = append(out, Pair{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// TopN returns the n largest pairs, descending by value with ties broken by
// key. n <= 0 or n > len(ps) returns every pair. ps is not modified.
func TopN(ps []Pair, n int) []Pair {
	out := append([]Pair(nil), ps...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Key < out[j].Key
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// SeriesByYear sums m per year in ascending year order.
func SeriesByYear(recs []records.Record, m Measure) []Point {
	idx := make(map[int64]int)
	var out []Point
	for _, r := range recs {
		y := int64(r.Year)
		if i, ok := idx[y]; ok {
			out[i].Value += m(r)
			continue
		}
		idx[y] = len(out)
		out = append(out, Point{Year: y, Value: m(r)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// FilterState returns the records whose state name matches state under
// Unicode case folding, ignoring surrounding whitespace.
func FilterState(recs []records.Record, state string) []records.Record {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(state))
	var out []records.Record
	for _, r := range recs {
		if fold.String(strings.TrimSpace(r.StateName)) == want {
			out = append(out, r)
		}
	}
	return out
}
