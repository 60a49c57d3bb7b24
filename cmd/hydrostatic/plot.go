package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/azmadax/hydrostatic"
)

// plotRightingArmCurve sweeps a full turn at one-degree resolution and
// writes the GZ curve to a PNG file.
func plotRightingArmCurve(hull hydrostatic.Curve, cg hydrostatic.Point, targetArea float64, path string) error {
	anglesDeg := make([]float64, 0, 361)
	for a := -180; a <= 180; a++ {
		anglesDeg = append(anglesDeg, float64(a))
	}
	arms, err := hydrostatic.RightingArmCurve(hull, cg, targetArea, anglesDeg)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "GZ curve"
	p.X.Label.Text = "Heel angle [deg]"
	p.Y.Label.Text = "Righting arm GZ [m]"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(anglesDeg))
	for i := range anglesDeg {
		pts[i].X = anglesDeg[i]
		pts[i].Y = arms[i]
	}
	if err := plotutil.AddLines(p, "GZ", pts); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
