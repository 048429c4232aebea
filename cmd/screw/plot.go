package main

import (
	"dasa.cc/ga/pga"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot saves the xy projection of path as an image; the format follows the
// file extension.
func Plot(fname string, path []pga.Point) error {
	p := plot.New()
	p.Title.Text = "screw"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(path))
	for i, a := range path {
		xys[i].X, xys[i].Y = float64(a.X()), float64(a.Y())
	}

	ln, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	ln.LineStyle.Width = vg.Points(1)
	ln.LineStyle.Color = plotutil.Color(0)

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = plotutil.Color(1)

	p.Add(ln, sc)
	p.Legend.Add("trajectory", ln, sc)
	return p.Save(6*vg.Inch, 6*vg.Inch, fname)
}
