// Package ice holds property correlations of water ice.
//
// SpecificEnthalpy is referenced to liquid water at 0 degree C, so it
// includes the heat of fusion. It returns 0 above 0 degree C, which lets the
// fog enthalpy of moist air add the liquid and the ice term unconditionally.
package ice

const (
	// HeatOfFusion at 0 degree C, kJ/kg
	HeatOfFusion = 333.5

	// MinTemperature the correlations are fitted down to, degree C
	MinTemperature = -150.0
)

/*
Density calculates the density of ice.

	Args:
	    ti: ice temperature, degree C

	Returns:
	    density, kg/m3
*/
func Density(ti float64) float64 {
	return 916.7 - 0.1403*ti
}

/*
SpecificHeat calculates the specific heat of ice.

	Args:
	    ti: ice temperature, degree C

	Returns:
	    specific heat, kJ/(kg K)
*/
func SpecificHeat(ti float64) float64 {
	return 2.050 + 0.00598*ti
}

/*
SpecificEnthalpy calculates the specific enthalpy of ice.

	Args:
	    ti: ice temperature, degree C

	Returns:
	    specific enthalpy, kJ/kg, negative below 0 degree C and 0 above it

	Notes:
	    integral of SpecificHeat from 0 to ti minus the heat of fusion
*/
func SpecificEnthalpy(ti float64) float64 {
	if ti > 0 {
		return 0
	}
	return -HeatOfFusion + 2.050*ti + 0.00299*ti*ti
}

// ThermalConductivity of ice, W/(m K)
func ThermalConductivity(ti float64) float64 {
	return 2.22 - 0.0082*ti
}
