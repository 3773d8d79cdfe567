package floater

import (
	"math"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
)

// Lewis-fit constants for the heave added mass coefficient of a rectangular
// section: Cm = lewisScale * (draft/width)^lewisExponent.
const (
	lewisScale    = 1.5937
	lewisExponent = 0.121
)

// CylinderAddedMass estimates the heave added mass (t) of a vertical circular
// cylinder using Lamb's classical solution (1932):
//
//	A33 = 1/3 * rho * D^3
//
// The result is rounded to one decimal.
func CylinderAddedMass(diameter float64) (float64, error) {
	if err := positive("diameter", diameter); err != nil {
		return 0, err
	}
	return round1(rho / 3 * math.Pow(diameter, 3)), nil
}

// CylinderWaterplaneArea is pi * D^2 / 4 (m^2).
func CylinderWaterplaneArea(diameter float64) float64 {
	return math.Pi * diameter * diameter / 4
}

// BargeAddedMassCoefficient is the heave added mass coefficient Cm (-) of a
// rectangular cross section, from a line fit to Lewis' numerical study.
func BargeAddedMassCoefficient(width, draft float64) (float64, error) {
	if err := positive("width", width); err != nil {
		return 0, err
	}
	if err := nonNegative("draft", draft); err != nil {
		return 0, err
	}
	return lewisScale * math.Pow(draft/width, lewisExponent), nil
}

// BargeAddedMass estimates the heave added mass (t) of a barge:
//
//	A33 = Cm * rho * pi * B^2 / 4 * L
func BargeAddedMass(width, draft, length float64) (float64, error) {
	if err := positive("width", width); err != nil {
		return 0, err
	}
	if err := positive("draft", draft); err != nil {
		return 0, err
	}
	if err := positive("length", length); err != nil {
		return 0, err
	}
	cm, err := BargeAddedMassCoefficient(width, draft)
	if err != nil {
		return 0, err
	}
	return cm * rho * math.Pi * width * width / 4 * length, nil
}

// BargeWaterplaneArea is B * L (m^2).
func BargeWaterplaneArea(width, length float64) float64 {
	return width * length
}

func positive(name string, v float64) error {
	if err := finite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return calcerr.Invalid("%s must be positive, got %g", name, v)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if err := finite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return calcerr.Invalid("%s must not be negative, got %g", name, v)
	}
	return nil
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return calcerr.Invalid("%s must be a finite number, got %g", name, v)
	}
	return nil
}

// round1 rounds half away from zero to one decimal.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
