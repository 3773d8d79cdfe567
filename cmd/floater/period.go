package floater

import "math"

// NaturalPeriodHeave returns the uncoupled and undamped natural period in
// heave (s), rounded to one decimal:
//
//	T = 2*pi * sqrt((m + A33) / (rho * g * Awp))
//
// mass and addedMass are in tonnes and must not be negative; waterplaneArea
// is in m^2 and must be positive.
func NaturalPeriodHeave(mass, waterplaneArea, addedMass float64) (float64, error) {
	if err := nonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := nonNegative("added mass", addedMass); err != nil {
		return 0, err
	}
	if err := positive("waterplane area", waterplaneArea); err != nil {
		return 0, err
	}
	stiffness := rho * Grav * waterplaneArea
	return round1(2 * math.Pi * math.Sqrt((mass+addedMass)/stiffness)), nil
}

// NaturalPeriodHeaveExplicit computes the period from directly supplied
// properties.
func NaturalPeriodHeaveExplicit(mass, waterplaneArea, addedMass float64) (float64, error) {
	return NaturalPeriodHeave(mass, waterplaneArea, addedMass)
}

// NaturalPeriodHeaveFromGeometry computes the period from the properties a
// floater derived at construction.
func NaturalPeriodHeaveFromGeometry(f Floater) (float64, error) {
	return NaturalPeriodHeave(f.Mass(), f.WaterplaneArea(), f.AddedMass())
}
