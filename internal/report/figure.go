package report

import "agrietl/internal/records"

// Kind is the visual form of a Figure.
type Kind string

const (
	KindBar     Kind = "bar"     // vertical bars over categories
	KindHBar    Kind = "hbar"    // horizontal bars, largest on top
	KindLine    Kind = "line"    // one line per series over X
	KindPie     Kind = "pie"     // shares of a single series
	KindScatter Kind = "scatter" // X/Y points per series
	KindBubble  Kind = "bubble"  // labelled X/Y points sized by Size
)

// Series is one data series of a Figure. Categorical kinds (bar, hbar, pie)
// use Labels and Y; line and scatter use X and Y; bubble uses all four.
type Series struct {
	Name   string
	Labels []string
	X      []float64
	Y      []float64
	Size   []float64
}

// Figure is a renderable chart: a title, axis labels, and its series.
type Figure struct {
	// Name is the output file stem, e.g. "rice_top_states".
	Name   string
	Title  string
	XLabel string
	YLabel string
	Kind   Kind
	Series []Series
}

// Empty reports whether no series carries a value. A pie whose values are
// all zero has no shares to draw and is empty too.
func (f Figure) Empty() bool {
	for _, s := range f.Series {
		if f.Kind != KindPie && len(s.Y) > 0 {
			return false
		}
		for _, v := range s.Y {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// Chart is one catalogue entry. Build derives the entry's figures from the
// records; most entries yield one figure, the wheat entry yields a bar and a
// pie.
type Chart struct {
	Name  string
	Title string
	Build func(recs []records.Record) []Figure
}

func categorical(name, title, xl, yl string, kind Kind, ps []Pair) Figure {
	s := Series{Name: title, Labels: make([]string, len(ps)), Y: make([]float64, len(ps))}
	for i, p := range ps {
		s.Labels[i] = p.Key
		s.Y[i] = p.Value
	}
	return Figure{Name: name, Title: title, XLabel: xl, YLabel: yl, Kind: kind, Series: []Series{s}}
}

func yearSeries(name string, pts []Point) Series {
	s := Series{Name: name, X: make([]float64, len(pts)), Y: make([]float64, len(pts))}
	for i, p := range pts {
		s.X[i] = float64(p.Year)
		s.Y[i] = p.Value
	}
	return s
}
