package floater

import (
	"strings"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
)

// Geometry identifies how a floater's added mass and waterplane area were
// obtained.
type Geometry int

const (
	// GeometryExplicit is a body whose added mass and waterplane area were
	// given directly.
	GeometryExplicit Geometry = iota
	// GeometryCylinder is a vertical circular cylinder.
	GeometryCylinder
	// GeometryBarge is a rectangular barge.
	GeometryBarge
)

func (g Geometry) String() string {
	switch g {
	case GeometryCylinder:
		return "cylinder"
	case GeometryBarge:
		return "barge"
	default:
		return "explicit"
	}
}

// ParseGeometry accepts "cylinder" or "barge" in any case.
func ParseGeometry(s string) (Geometry, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cylinder":
		return GeometryCylinder, nil
	case "barge":
		return GeometryBarge, nil
	}
	return 0, calcerr.Invalid("invalid geometry: %q (want cylinder or barge)", strings.ToLower(s))
}

// Dimensions are the characteristic lengths (m) of a hull. A cylinder uses
// Diameter only; a barge uses Width, Draft and Length.
type Dimensions struct {
	Diameter float64
	Width    float64
	Draft    float64
	Length   float64
}

// Estimate builds the floater for g with an estimated added mass. Lengths the
// geometry does not use must be left zero.
func Estimate(g Geometry, mass float64, d Dimensions) (Floater, error) {
	switch g {
	case GeometryCylinder:
		if d.Width != 0 || d.Draft != 0 || d.Length != 0 {
			return nil, calcerr.Invalid("invalid combination of geometry %s and characteristic lengths: give diameter only", g)
		}
		c, err := NewCylinder(mass, d.Diameter)
		if err != nil {
			return nil, err
		}
		return c, nil
	case GeometryBarge:
		if d.Diameter != 0 {
			return nil, calcerr.Invalid("invalid combination of geometry %s and characteristic lengths: give width, draft and length", g)
		}
		b, err := NewBarge(mass, d.Width, d.Draft, d.Length)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, calcerr.Invalid("geometry %s cannot be estimated from dimensions", g)
}
