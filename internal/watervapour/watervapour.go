// Package watervapour holds temperature dependent property correlations of
// water vapour treated as an ideal gas.
package watervapour

import "math"

const (
	// MolarMass of water, g/mol
	MolarMass = 18.01528

	// GasConstant of water vapour, J/(kg K)
	GasConstant = 8314.46 / MolarMass

	// SutherlandConstant of water vapour, K (1.5 x normal boiling point)
	SutherlandConstant = 1.5 * 373.15

	// LatentHeat of vaporization at 0 degree C, kJ/kg
	LatentHeat = 2500.9

	kelvin = 273.15
)

/*
Density calculates the density of water vapour.

	Args:
	    ta: temperature, degree C
	    pat: partial pressure of the vapour, Pa

	Returns:
	    density, kg/m3
*/
func Density(ta, pat float64) float64 {
	return pat / (GasConstant * (ta + kelvin))
}

/*
SpecificHeat calculates the isobaric specific heat of water vapour.

	Args:
	    ta: temperature, degree C

	Returns:
	    specific heat, kJ/(kg K)
*/
func SpecificHeat(ta float64) float64 {
	return 1.8583878 +
		2.0188729e-4*ta +
		1.1774590e-6*ta*ta -
		9.8911558e-10*ta*ta*ta
}

/*
SpecificEnthalpy calculates the specific enthalpy of water vapour,
latent heat at 0 degree C included.

	Args:
	    ta: temperature, degree C

	Returns:
	    specific enthalpy, kJ/kg
*/
func SpecificEnthalpy(ta float64) float64 {
	return LatentHeat + SpecificHeat(ta)*ta
}

/*
DynamicViscosity calculates the dynamic viscosity of water vapour.

	Args:
	    ta: temperature, degree C

	Returns:
	    dynamic viscosity, kg/(m s)

	Notes:
	    linear correlation by Tsilingiris (2008)
*/
func DynamicViscosity(ta float64) float64 {
	return 8.058131868e-6 + 4.000549451e-8*ta
}

/*
ThermalConductivity calculates the thermal conductivity of water vapour.

	Args:
	    ta: temperature, degree C

	Returns:
	    thermal conductivity, W/(m K)

	Notes:
	    Tsilingiris (2008)
*/
func ThermalConductivity(ta float64) float64 {
	return 1.761758242e-2 + 5.558941059e-5*ta + 1.663336663e-7*math.Pow(ta, 2)
}
