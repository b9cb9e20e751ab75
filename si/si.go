// Package si provides SI base units, some derived units, and physical
// constants as quantities.
//
// Every unit symbol is the lower-case English name of a base unit, so derived
// units and constants are expressed in meter, second, kilogram, ampere,
// kelvin, mole, and candela.
package si

import (
	"math"
	"slices"
	"strings"

	"github.com/zephyrtronium/quantity"
)

// Base units.
var (
	Meter    = quantity.Unit("meter")
	Second   = quantity.Unit("second")
	Kilogram = quantity.Unit("kilogram")
	Ampere   = quantity.Unit("ampere")
	Kelvin   = quantity.Unit("kelvin")
	Mole     = quantity.Unit("mole")
	Candela  = quantity.Unit("candela")
)

var (
	Kilometer = quantity.Mul(Meter, quantity.Scalar(1000))
	Gram      = quantity.Div(Kilogram, quantity.Scalar(1000))
)

// Derived units.
var (
	Area          = quantity.Pow(Meter, quantity.Scalar(2))
	Volume        = quantity.Pow(Meter, quantity.Scalar(3))
	Speed         = quantity.Div(Meter, Second)
	Acceleration  = quantity.Div(Speed, Second)
	Density       = quantity.Div(Gram, Volume)
	Frequency     = quantity.Pow(Second, quantity.Scalar(-1))
	Coulomb       = quantity.Mul(Ampere, Second)
	Joule         = quantity.Must(quantity.EvalString("kilogram*meter^2second^-2"))
	Newton        = quantity.Must(quantity.EvalString("kilogram*meter*second^-2"))
	Volt          = quantity.Div(Joule, Coulomb)
	FieldStrength = quantity.Div(Volt, Meter)
	Farad         = quantity.Must(quantity.EvalString("second^4ampere^2kilogram^-1meter^-2"))
)

// Physical constants.
var (
	ElectronMass   = quantity.Mul(quantity.Scalar(9.10938356e-31), Kilogram)
	ElectronCharge = quantity.Mul(quantity.Scalar(1.60217662e-19), Coulomb)
	// ElectronVolt is the energy gained by an electron across one volt.
	ElectronVolt = quantity.Mul(quantity.Scalar(ElectronCharge.Value()), Joule)
	LightSpeed   = quantity.Mul(quantity.Scalar(299792458), Speed)
	// EpsilonNaught is the vacuum permittivity.
	EpsilonNaught = quantity.Must(quantity.Evalf("%v%v%v^-1", quantity.Scalar(8.854187817e-12), Farad, Meter))
	// CoulombConstant is 1/(4π ε0).
	CoulombConstant = quantity.Must(quantity.Evalf("1/4%v%v", quantity.Scalar(math.Pi), EpsilonNaught))
)

var table = map[string]quantity.Quantity{
	"meter":    Meter,
	"second":   Second,
	"kilogram": Kilogram,
	"ampere":   Ampere,
	"kelvin":   Kelvin,
	"mole":     Mole,
	"candela":  Candela,

	"kilometer": Kilometer,
	"gram":      Gram,

	"area":          Area,
	"volume":        Volume,
	"speed":         Speed,
	"acceleration":  Acceleration,
	"density":       Density,
	"frequency":     Frequency,
	"coulomb":       Coulomb,
	"joule":         Joule,
	"newton":        Newton,
	"volt":          Volt,
	"fieldstrength": FieldStrength,
	"farad":         Farad,

	"electronmass":    ElectronMass,
	"electroncharge":  ElectronCharge,
	"electronvolt":    ElectronVolt,
	"lightspeed":      LightSpeed,
	"epsilonnaught":   EpsilonNaught,
	"coulombconstant": CoulombConstant,
}

// Lookup returns the unit or constant with the given name. Names are the
// lower-case forms of the exported variable names, and lookup ignores case.
func Lookup(name string) (quantity.Quantity, bool) {
	q, ok := table[strings.ToLower(name)]
	return q, ok
}

// Names returns the names recognized by Lookup in sorted order.
func Names() []string {
	r := make([]string, 0, len(table))
	for name := range table {
		r = append(r, name)
	}
	slices.Sort(r)
	return r
}
