package humidair

import (
	"moist_air_calc/internal/dryair"
	"moist_air_calc/internal/ice"
	"moist_air_calc/internal/watervapour"
)

const (
	// StandardPressure at sea level, Pa
	StandardPressure = 101325.0

	// DefaultTemperature of indoor air, degree C
	DefaultTemperature = 20.0

	// DefaultRelativeHumidity of indoor air, %
	DefaultRelativeHumidity = 50.0

	// MinTemperature accepted for an air state, degree C
	MinTemperature = ice.MinTemperature

	// MaxTemperature accepted for an air state, degree C
	MaxTemperature = 200.0

	// MaxMassFlow accepted for a flow, kg/s
	MaxMassFlow = 5e9

	// ratio of water and dry air molar masses
	wgRatio = watervapour.MolarMass / dryair.MolarMass

	// multipliers of an estimated root used as the solver counterpart points
	solverACoef = 0.8
	solverBCoef = 1.01

	// distance kept from the boiling point by searches on the saturation
	// curve, K
	boilingMargin = 1e-3

	kelvin = 273.15
)
