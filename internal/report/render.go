package report

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Image size of every rendered chart.
const (
	ImageWidth  = 10 * vg.Inch
	ImageHeight = 6 * vg.Inch
)

// Render draws f and writes it to path. The image format follows the file
// extension (.png, .svg, .pdf).
func Render(f Figure, path string) error {
	p, err := newPlot(f)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Name, err)
	}
	if err := p.Save(ImageWidth, ImageHeight, path); err != nil {
		return fmt.Errorf("%s: save: %w", f.Name, err)
	}
	return nil
}

func newPlot(f Figure) (*plot.Plot, error) {
	if len(f.Series) == 0 {
		return nil, fmt.Errorf("no series")
	}
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel

	var err error
	switch f.Kind {
	case KindBar:
		err = addBars(p, f.Series[0], false)
	case KindHBar:
		err = addBars(p, f.Series[0], true)
	case KindLine:
		err = addLines(p, f.Series)
	case KindScatter:
		err = addScatter(p, f.Series)
	case KindBubble:
		err = addBubbles(p, f.Series[0])
	case KindPie:
		err = addPie(p, f.Series[0])
	default:
		err = fmt.Errorf("unknown chart kind %q", f.Kind)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func addBars(p *plot.Plot, s Series, horizontal bool) error {
	labels := s.Labels
	vals := plotter.Values(s.Y)
	if horizontal {
		// index 0 is drawn at the bottom; keep the largest value on top
		labels = reversed(s.Labels)
		vals = plotter.Values(reversed(s.Y))
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return err
	}
	bars.Horizontal = horizontal
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	if horizontal {
		p.NominalY(labels...)
		p.Add(plotter.NewGrid())
		return nil
	}
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight
	return nil
}

func addLines(p *plot.Plot, ss []Series) error {
	for i, s := range ss {
		line, pts, err := plotter.NewLinePoints(xys(s))
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		pts.GlyphStyle.Color = plotutil.Color(i)
		pts.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, pts)
		p.Legend.Add(s.Name, line, pts)
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return nil
}

func addScatter(p *plot.Plot, ss []Series) error {
	for i, s := range ss {
		sc, err := plotter.NewScatter(xys(s))
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		p.Legend.Add(s.Name, sc)
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return nil
}

func addBubbles(p *plot.Plot, s Series) error {
	pts := xys(s)
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	maxSize := 0.0
	for _, v := range s.Size {
		maxSize = math.Max(maxSize, v)
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		r := vg.Points(4)
		if maxSize > 0 && i < len(s.Size) {
			r += vg.Points(20 * math.Sqrt(s.Size[i]/maxSize))
		}
		return draw.GlyphStyle{Color: plotutil.Color(i), Radius: r, Shape: draw.CircleGlyph{}}
	}
	p.Add(sc)

	if len(s.Labels) == len(pts) {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: s.Labels})
		if err != nil {
			return err
		}
		p.Add(labels)
	}
	p.Add(plotter.NewGrid())
	return nil
}

func addPie(p *plot.Plot, s Series) error {
	pie, err := newPieChart(s)
	if err != nil {
		return err
	}
	p.Add(pie)
	for i, l := range s.Labels {
		p.Legend.Add(fmt.Sprintf("%s (%.1f%%)", l, 100*s.Y[i]/pie.total), swatch{plotutil.Color(i)})
	}
	p.HideAxes()
	p.Legend.Left = true
	return nil
}

func xys(s Series) plotter.XYs {
	out := make(plotter.XYs, len(s.Y))
	for i := range s.Y {
		if i < len(s.X) {
			out[i].X = s.X[i]
		}
		out[i].Y = s.Y[i]
	}
	return out
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// pieChart draws the shares of one series as wedges around the canvas
// centre, starting at twelve o'clock and running clockwise.
type pieChart struct {
	values []float64
	total  float64
	line   draw.LineStyle
}

func newPieChart(s Series) (*pieChart, error) {
	total := 0.0
	for _, v := range s.Y {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("pie value %v out of range", v)
		}
		total += v
	}
	if total == 0 {
		return nil, fmt.Errorf("pie values sum to zero")
	}
	return &pieChart{
		values: s.Y,
		total:  total,
		line:   draw.LineStyle{Color: color.White, Width: vg.Points(1)},
	}, nil
}

func (pc *pieChart) Plot(c draw.Canvas, _ *plot.Plot) {
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	r := 0.45 * vg.Length(math.Min(float64(w), float64(h)))
	ctr := c.Center()

	start := math.Pi / 2
	for i, v := range pc.values {
		sweep := -2 * math.Pi * v / pc.total
		var path vg.Path
		path.Move(ctr)
		path.Arc(ctr, r, start, sweep)
		path.Close()
		c.SetColor(plotutil.Color(i))
		c.Fill(path)
		c.SetLineStyle(pc.line)
		c.Stroke(path)
		start += sweep
	}
}

// swatch is a legend thumbnail filled with a single colour.
type swatch struct{ color color.Color }

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, pts)
}
