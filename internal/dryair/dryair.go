// Package dryair holds temperature dependent property correlations of dry air.
// Temperatures are in degree C, pressures in Pa.
package dryair

import "math"

const (
	// MolarMass of dry air, g/mol
	MolarMass = 28.96546

	// GasConstant of dry air, J/(kg K)
	GasConstant = UniversalGasConstant / MolarMass

	// SutherlandConstant of dry air, K
	SutherlandConstant = 110.4

	// UniversalGasConstant, J/(kmol K)
	UniversalGasConstant = 8314.46

	kelvin = 273.15
)

/*
Density calculates the density of dry air from the ideal gas law.

	Args:
	    ta: dry bulb temperature, degree C
	    pat: absolute pressure, Pa

	Returns:
	    density, kg/m3
*/
func Density(ta, pat float64) float64 {
	return pat / (GasConstant * (ta + kelvin))
}

/*
SpecificHeat calculates the isobaric specific heat of dry air.

	Args:
	    ta: dry bulb temperature, degree C

	Returns:
	    specific heat, kJ/(kg K)

	Notes:
	    polynomial fit of tabulated data between -100 and 200 degree C
*/
func SpecificHeat(ta float64) float64 {
	return 1.0035286 +
		3.6155780e-5*ta +
		3.1594811e-7*ta*ta +
		2.5166268e-10*ta*ta*ta -
		6.3383403e-13*ta*ta*ta*ta
}

/*
SpecificEnthalpy calculates the specific enthalpy of dry air referenced to 0 degree C.

	Args:
	    ta: dry bulb temperature, degree C

	Returns:
	    specific enthalpy, kJ/kg
*/
func SpecificEnthalpy(ta float64) float64 {
	return SpecificHeat(ta) * ta
}

/*
DynamicViscosity calculates the dynamic viscosity of dry air.

	Args:
	    ta: dry bulb temperature, degree C

	Returns:
	    dynamic viscosity, kg/(m s)

	Notes:
	    Sutherland's law
*/
func DynamicViscosity(ta float64) float64 {
	tk := ta + kelvin
	return 1.458e-6 * math.Pow(tk, 1.5) / (tk + SutherlandConstant)
}

/*
ThermalConductivity calculates the thermal conductivity of dry air.

	Args:
	    ta: dry bulb temperature, degree C

	Returns:
	    thermal conductivity, W/(m K)
*/
func ThermalConductivity(ta float64) float64 {
	tk := ta + kelvin
	return 2.646e-3 * math.Pow(tk, 1.5) / (tk + 245.4*math.Pow(10, -12/tk))
}

// KinematicViscosity of dry air, m2/s
func KinematicViscosity(ta, pat float64) float64 {
	return DynamicViscosity(ta) / Density(ta, pat)
}
