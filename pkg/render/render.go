// Package render draws the chart artifacts. It is a thin gonum/plot wrapper:
// callers hand over (x, y) series with labels and a target path, everything
// about appearance stays in here.
package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one labeled (x, y) sequence. X and Y must have equal length.
type Series struct {
	Label string
	X, Y  []float64
}

// CurveOptions styles a multi-line chart.
type CurveOptions struct {
	Title  string
	XLabel string
	YLabel string
	YMin   float64
	YMax   float64
	// GuideX draws a dotted vertical guide (e.g. a cold-climate operation
	// limit) when non-nil.
	GuideX *float64
}

// ScatterOptions styles a scatter-plus-trend chart.
type ScatterOptions struct {
	Title  string
	XLabel string
	YLabel string
}

func xys(s Series) (plotter.XYs, error) {
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("render: series %q: x/y length mismatch (%d vs %d)", s.Label, len(s.X), len(s.Y))
	}
	pts := make(plotter.XYs, 0, len(s.X))
	for i := range s.X {
		// NaN marks an invalid point; leave a gap rather than a spike
		if math.IsNaN(s.X[i]) || math.IsNaN(s.Y[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: s.X[i], Y: s.Y[i]})
	}
	return pts, nil
}

// Curves renders one line per series and saves a PNG to path.
func Curves(series []Series, opt CurveOptions, path string) error {
	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel
	p.Add(plotter.NewGrid())

	for i, s := range series {
		pts, err := xys(s)
		if err != nil {
			return err
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("render: line %q: %w", s.Label, err)
		}
		line.Width = vg.Points(2)
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	if opt.YMax > opt.YMin {
		p.Y.Min = opt.YMin
		p.Y.Max = opt.YMax
	}

	// the guide needs a concrete vertical extent, which only exists once the
	// y range has been pinned
	if opt.GuideX != nil && opt.YMax > opt.YMin {
		guide, err := plotter.NewLine(plotter.XYs{
			{X: *opt.GuideX, Y: opt.YMin},
			{X: *opt.GuideX, Y: opt.YMax},
		})
		if err != nil {
			return fmt.Errorf("render: guide line: %w", err)
		}
		guide.Color = color.Gray{Y: 128}
		guide.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
		p.Add(guide)
	}

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// Scatter renders translucent scatter points with a dashed trend line over
// them and saves a PNG to path.
func Scatter(points, trend Series, opt ScatterOptions, path string) error {
	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel
	p.Add(plotter.NewGrid())

	pts, err := xys(points)
	if err != nil {
		return err
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("render: scatter %q: %w", points.Label, err)
	}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	sc.GlyphStyle.Color = color.NRGBA{R: 52, G: 152, B: 219, A: 100}
	p.Add(sc)
	p.Legend.Add(points.Label, sc)

	tpts, err := xys(trend)
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(tpts)
	if err != nil {
		return fmt.Errorf("render: trend %q: %w", trend.Label, err)
	}
	line.Width = vg.Points(2)
	line.Color = color.NRGBA{R: 231, G: 76, B: 60, A: 255}
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(line)
	p.Legend.Add(trend.Label, line)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
