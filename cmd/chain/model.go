// Package chain models the cross section of an offshore mooring chain.
//
// Strength and weight follow DNVGL-OS-E302 "Offshore mooring chain" (2015).
// Diameters are nominal and given in metres; forces are in newtons.
package chain

import (
	"fmt"
	"math"
	"strings"

	"github.com/sumwatshade/offcalc/cmd/calcerr"
)

// Quality is the chain material grade.
type Quality string

const (
	R3  Quality = "R3"
	R3S Quality = "R3S"
	R4  Quality = "R4"
	R4S Quality = "R4S"
	R5  Quality = "R5"
)

// Qualities lists the supported grades in ascending strength.
var Qualities = []Quality{R3, R3S, R4, R4S, R5}

// strengthFactor is the ratio of breaking strength to d^2*(44-0.08d) in kN/mm^2.
var strengthFactor = map[Quality]float64{
	R3:  0.0223,
	R3S: 0.0249,
	R4:  0.0274,
	R4S: 0.0304,
	R5:  0.0320,
}

// dry weight per unit length over diameter squared, before gravity (t/m^3)
const (
	studdedWeight  = 0.0219
	studlessWeight = 0.0200
	grav           = 9.81
)

// ParseQuality accepts a grade name in any case.
func ParseQuality(s string) (Quality, error) {
	q := Quality(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := strengthFactor[q]; !ok {
		return "", calcerr.Invalid("invalid chain quality: %q (want one of R3, R3S, R4, R4S, R5)", strings.ToUpper(s))
	}
	return q, nil
}

// MooringChain is a chain of one quality, studded or studless.
type MooringChain struct {
	quality Quality
	stud    bool
}

// New returns the chain model for quality, which must be one of the
// Qualities.
func New(quality string, stud bool) (MooringChain, error) {
	q, err := ParseQuality(quality)
	if err != nil {
		return MooringChain{}, err
	}
	return MooringChain{quality: q, stud: stud}, nil
}

func (c MooringChain) Quality() Quality { return c.quality }
func (c MooringChain) Studded() bool    { return c.stud }

// FactorStrength is the ratio of breaking strength to
// diameter^2 * (44 - 0.08*diameter), with diameter in mm (kN/mm^2).
func (c MooringChain) FactorStrength() float64 {
	return strengthFactor[c.quality]
}

// FactorDryWeight is the ratio of dry weight per unit length to diameter
// squared (N/m^2/m).
func (c MooringChain) FactorDryWeight() float64 {
	if c.stud {
		return studdedWeight * 1e6 * grav
	}
	return studlessWeight * 1e6 * grav
}

// BreakingStrength is the minimum breaking load (N) of a chain of nominal
// diameter d (m):
//
//	MBL = fs * (1000d)^2 * (44 - 0.08 * 1000d) * 1000
func (c MooringChain) BreakingStrength(diameter float64) (float64, error) {
	if err := validDiameter(diameter); err != nil {
		return 0, err
	}
	mm := diameter * 1000
	return c.FactorStrength() * mm * mm * (44 - 0.08*mm) * 1000, nil
}

// DryWeight is the dry weight per unit length (N/m) of a chain of nominal
// diameter d (m).
func (c MooringChain) DryWeight(diameter float64) (float64, error) {
	if err := validDiameter(diameter); err != nil {
		return 0, err
	}
	return c.FactorDryWeight() * diameter * diameter, nil
}

func (c MooringChain) String() string {
	kind := "studless"
	if c.stud {
		kind = "studded"
	}
	return fmt.Sprintf("%s %s", c.quality, kind)
}

func validDiameter(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return calcerr.Invalid("chain diameter must be a positive number, got %g", d)
	}
	return nil
}
