// Package sweep evaluates the heave natural period over a range of one hull
// dimension and charts the result.
package sweep

import (
	"math"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
	"github.com/sumwatshade/offcalc/cmd/floater"
)

// Point is the natural period (s) at one value of the swept dimension (m).
type Point struct {
	X      float64
	Period float64
}

// Builder constructs the floater for a value of the swept dimension.
type Builder func(x float64) (floater.Floater, error)

// Run evaluates build at n evenly spaced values from..to (inclusive).
func Run(build Builder, from, to float64, n int) ([]Point, error) {
	if n < 2 {
		return nil, calcerr.Invalid("sweep needs at least 2 points, got %d", n)
	}
	if math.IsNaN(from) || math.IsNaN(to) || from <= 0 || to <= from {
		return nil, calcerr.Invalid("sweep range must satisfy 0 < from < to, got %g..%g", from, to)
	}
	step := (to - from) / float64(n-1)
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		x := from + float64(i)*step
		if i == n-1 {
			x = to
		}
		f, err := build(x)
		if err != nil {
			return nil, err
		}
		t, err := f.NaturalPeriodHeave()
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{X: x, Period: t})
	}
	return pts, nil
}

// CylinderDiameter sweeps the diameter of a cylinder of fixed mass (t).
func CylinderDiameter(mass float64) Builder {
	return func(x float64) (floater.Floater, error) {
		return floater.Estimate(floater.GeometryCylinder, mass, floater.Dimensions{Diameter: x})
	}
}

// BargeDimension sweeps one of "width", "draft" or "length" of a barge of
// fixed mass (t), keeping the other dimensions of base. base.Diameter must be
// zero.
func BargeDimension(mass float64, base floater.Dimensions, dim string) (Builder, error) {
	set, ok := map[string]func(d *floater.Dimensions, x float64){
		"width":  func(d *floater.Dimensions, x float64) { d.Width = x },
		"draft":  func(d *floater.Dimensions, x float64) { d.Draft = x },
		"length": func(d *floater.Dimensions, x float64) { d.Length = x },
	}[dim]
	if !ok {
		return nil, calcerr.Invalid("invalid barge dimension %q (want width, draft or length)", dim)
	}
	return func(x float64) (floater.Floater, error) {
		d := base
		set(&d, x)
		return floater.Estimate(floater.GeometryBarge, mass, d)
	}, nil
}
