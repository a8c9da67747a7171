package humidair

import "math"

/*
PressureAtAltitude calculates the standard atmospheric pressure.

	Args:
	    altitude: height above sea level, m

	Returns:
	    absolute pressure, Pa
*/
func PressureAtAltitude(altitude float64) float64 {
	return 101.325 * math.Pow(1-2.25577e-5*altitude, 5.2559) * 1000
}

/*
TemperatureAtAltitude calculates the air temperature at altitude from the
temperature at sea level.

	Args:
	    t: temperature at sea level, degree C
	    altitude: height above sea level, m

	Returns:
	    temperature, degree C

	Notes:
	    standard lapse rate of 6.5 K per 1000 m
*/
func TemperatureAtAltitude(t, altitude float64) float64 {
	return t - 0.0065*altitude
}
