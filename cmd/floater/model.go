// Package floater estimates the uncoupled, undamped natural period in heave
// of simple floating bodies.
//
// # Units
//
// The package uses one unit system throughout: mass and added mass in
// tonnes, lengths in metres, areas in m^2 and periods in seconds. Seawater
// density is therefore 1.025 t/m^3. There is no kilogram entry point; convert
// before calling.
//
// # Variants
//
// Body takes mass, added mass and waterplane area as given. Cylinder and
// Barge derive waterplane area and, unless one is supplied, added mass from
// their dimensions at construction time:
//
//	c, err := floater.NewCylinder(1000, 10)
//	if err != nil {
//	    return err
//	}
//	t, err := c.NaturalPeriodHeave() // 8.2 s
//
// All values are immutable once built and safe to share between goroutines.
package floater

import "fmt"

const (
	// Grav is the gravitational acceleration (m/s^2).
	Grav = 9.81
	// Rho is the seawater density (t/m^3).
	Rho = 1.025

	rho = Rho
)

// Floater is a floating body with the properties that govern heave.
type Floater interface {
	Geometry() Geometry
	// Mass of the body (t).
	Mass() float64
	// AddedMass in heave, A33 (t).
	AddedMass() float64
	// WaterplaneArea at the still water line (m^2).
	WaterplaneArea() float64
	// NaturalPeriodHeave is the uncoupled and undamped natural period in
	// heave (s), rounded to one decimal.
	NaturalPeriodHeave() (float64, error)
}

var (
	_ Floater = Body{}
	_ Floater = Cylinder{}
	_ Floater = Barge{}
)

// hydro holds the derived quantities every variant carries.
type hydro struct {
	mass      float64
	addedMass float64
	wpArea    float64
}

func (h hydro) Mass() float64           { return h.mass }
func (h hydro) AddedMass() float64      { return h.addedMass }
func (h hydro) WaterplaneArea() float64 { return h.wpArea }

func (h hydro) NaturalPeriodHeave() (float64, error) {
	return NaturalPeriodHeave(h.mass, h.wpArea, h.addedMass)
}

// Body is a floater described directly by its mass, added mass and
// waterplane area.
type Body struct {
	hydro
}

// NewBody validates and returns an explicit floater.
func NewBody(mass, addedMass, waterplaneArea float64) (Body, error) {
	if err := nonNegative("mass", mass); err != nil {
		return Body{}, err
	}
	if err := nonNegative("added mass", addedMass); err != nil {
		return Body{}, err
	}
	if err := positive("waterplane area", waterplaneArea); err != nil {
		return Body{}, err
	}
	return Body{hydro{mass: mass, addedMass: addedMass, wpArea: waterplaneArea}}, nil
}

func (Body) Geometry() Geometry { return GeometryExplicit }

func (b Body) String() string {
	return fmt.Sprintf("body m=%.1ft A33=%.1ft Awp=%.2fm²", b.mass, b.addedMass, b.wpArea)
}

// Cylinder is a vertical circular cylinder.
type Cylinder struct {
	hydro
	diameter float64
	// estimated is true when addedMass came from the Lamb estimate.
	estimated bool
}

// NewCylinder builds a cylinder whose added mass is estimated with Lamb's
// solution.
func NewCylinder(mass, diameter float64) (Cylinder, error) {
	if err := validateCylinder(mass, diameter); err != nil {
		return Cylinder{}, err
	}
	am, err := CylinderAddedMass(diameter)
	if err != nil {
		return Cylinder{}, err
	}
	return Cylinder{
		hydro:     hydro{mass: mass, addedMass: am, wpArea: CylinderWaterplaneArea(diameter)},
		diameter:  diameter,
		estimated: true,
	}, nil
}

// NewCylinderWithAddedMass builds a cylinder with a known added mass.
func NewCylinderWithAddedMass(mass, diameter, addedMass float64) (Cylinder, error) {
	if err := validateCylinder(mass, diameter); err != nil {
		return Cylinder{}, err
	}
	if err := nonNegative("added mass", addedMass); err != nil {
		return Cylinder{}, err
	}
	return Cylinder{
		hydro:    hydro{mass: mass, addedMass: addedMass, wpArea: CylinderWaterplaneArea(diameter)},
		diameter: diameter,
	}, nil
}

func validateCylinder(mass, diameter float64) error {
	if err := positive("diameter", diameter); err != nil {
		return err
	}
	return nonNegative("mass", mass)
}

func (Cylinder) Geometry() Geometry         { return GeometryCylinder }
func (c Cylinder) Diameter() float64        { return c.diameter }
func (c Cylinder) AddedMassEstimated() bool { return c.estimated }

func (c Cylinder) String() string {
	return fmt.Sprintf("cylinder D=%gm m=%.1ft A33=%.1ft Awp=%.2fm²", c.diameter, c.mass, c.addedMass, c.wpArea)
}

// Barge is a box-shaped floater.
type Barge struct {
	hydro
	width, draft, length float64
	estimated            bool
}

// NewBarge builds a barge whose added mass is estimated from the Lewis-fit
// coefficient.
func NewBarge(mass, width, draft, length float64) (Barge, error) {
	if err := validateBarge(mass, width, draft, length); err != nil {
		return Barge{}, err
	}
	am, err := BargeAddedMass(width, draft, length)
	if err != nil {
		return Barge{}, err
	}
	return Barge{
		hydro:     hydro{mass: mass, addedMass: am, wpArea: BargeWaterplaneArea(width, length)},
		width:     width,
		draft:     draft,
		length:    length,
		estimated: true,
	}, nil
}

// NewBargeWithAddedMass builds a barge with a known added mass.
func NewBargeWithAddedMass(mass, width, draft, length, addedMass float64) (Barge, error) {
	if err := validateBarge(mass, width, draft, length); err != nil {
		return Barge{}, err
	}
	if err := nonNegative("added mass", addedMass); err != nil {
		return Barge{}, err
	}
	return Barge{
		hydro:  hydro{mass: mass, addedMass: addedMass, wpArea: BargeWaterplaneArea(width, length)},
		width:  width,
		draft:  draft,
		length: length,
	}, nil
}

func validateBarge(mass, width, draft, length float64) error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", width}, {"draft", draft}, {"length", length}} {
		if err := positive(d.name, d.v); err != nil {
			return err
		}
	}
	return nonNegative("mass", mass)
}

func (Barge) Geometry() Geometry         { return GeometryBarge }
func (b Barge) Width() float64           { return b.width }
func (b Barge) Draft() float64           { return b.draft }
func (b Barge) Length() float64          { return b.length }
func (b Barge) AddedMassEstimated() bool { return b.estimated }

// AddedMassCoefficient returns the Lewis-fit Cm for the barge section.
func (b Barge) AddedMassCoefficient() float64 {
	cm, _ := BargeAddedMassCoefficient(b.width, b.draft) // width > 0 by construction
	return cm
}

func (b Barge) String() string {
	return fmt.Sprintf("barge B=%gm T=%gm L=%gm m=%.1ft A33=%.1ft Awp=%.2fm²",
		b.width, b.draft, b.length, b.mass, b.addedMass, b.wpArea)
}
