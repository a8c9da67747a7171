// Package liquidwater holds property correlations of liquid water.
//
// SpecificEnthalpy returns 0 for temperatures at or below 0 degree C. Fog
// enthalpy of moist air adds the liquid and the ice contribution without
// checking the regime, so this zero is part of the contract.
package liquidwater

import "math"

const kelvin = 273.15

/*
Density calculates the density of liquid water.

	Args:
	    tw: water temperature, degree C

	Returns:
	    density, kg/m3

	Notes:
	    Kell (1975), valid between 0 and 150 degree C
*/
func Density(tw float64) float64 {
	num := 999.83952 +
		16.945176*tw -
		7.9870401e-3*tw*tw -
		46.170461e-6*tw*tw*tw +
		105.56302e-9*tw*tw*tw*tw -
		280.54253e-12*tw*tw*tw*tw*tw
	return num / (1 + 16.879850e-3*tw)
}

/*
SpecificHeat calculates the isobaric specific heat of liquid water.

	Args:
	    tw: water temperature, degree C

	Returns:
	    specific heat, kJ/(kg K)
*/
func SpecificHeat(tw float64) float64 {
	x := tw / 100
	return 4.21941328671299 +
		x*(-0.2941423853837488+
			x*(0.7271882283980481+
				x*(-0.723407148345753+
					x*0.28700466197495406)))
}

/*
SpecificEnthalpy calculates the specific enthalpy of liquid water referenced to 0 degree C.

	Args:
	    tw: water temperature, degree C

	Returns:
	    specific enthalpy, kJ/kg, 0 when tw <= 0
*/
func SpecificEnthalpy(tw float64) float64 {
	if tw <= 0 {
		return 0
	}
	return SpecificHeat(tw) * tw
}

/*
DynamicViscosity calculates the dynamic viscosity of liquid water.

	Args:
	    tw: water temperature, degree C

	Returns:
	    dynamic viscosity, kg/(m s)

	Notes:
	    Vogel equation
*/
func DynamicViscosity(tw float64) float64 {
	return 2.414e-5 * math.Pow(10, 247.8/(tw+kelvin-140))
}

// ThermalConductivity of liquid water, W/(m K)
func ThermalConductivity(tw float64) float64 {
	return 0.5650285 +
		0.0026363895*tw -
		0.00012516934*math.Pow(tw, 1.5) -
		1.5154918e-6*tw*tw -
		0.0009412945*math.Pow(tw, 0.5)
}
