package process

import (
	"fmt"

	"moist_air_calc/internal/humidair"
)

/*
HeatingForInputHeat calculates the outlet of a heater supplied with a given
heat.

	Args:
	    inlet: inlet flow
	    q: heat supplied to the air, W, q >= 0

	Returns:
	    outlet flow and heat of process
*/
func HeatingForInputHeat(inlet humidair.Flow, q float64) (HeatingResult, error) {
	if q < 0 {
		return HeatingResult{}, fmt.Errorf("heating with %g W: %w", q, humidair.ErrInvalidArgument)
	}
	return exchangeHeat(inlet, q)
}

/*
HeatingForTargetTemperature calculates the heat needed to warm the inlet up
to the target temperature.

	Args:
	    inlet: inlet flow
	    ta: outlet dry bulb temperature, degree C, ta >= inlet temperature

	Returns:
	    outlet flow and heat of process
*/
func HeatingForTargetTemperature(inlet humidair.Flow, ta float64) (HeatingResult, error) {
	if ta < inlet.Temperature {
		return HeatingResult{}, fmt.Errorf("heating from %g to %g degree C: %w",
			inlet.Temperature, ta, humidair.ErrInvalidArgument)
	}
	return sensibleToTemperature(inlet, ta)
}

/*
HeatingForTargetRH calculates the heat needed to lower the relative humidity
of the inlet to the target value.

	Args:
	    inlet: inlet flow
	    rh: outlet relative humidity, %, (0, 100], rh <= inlet relative humidity

	Returns:
	    outlet flow and heat of process

	Notes:
	    The humidity ratio is constant, the outlet temperature is the one
	    at which the inlet humidity ratio gives the target relative humidity.
*/
func HeatingForTargetRH(inlet humidair.Flow, rh float64) (HeatingResult, error) {
	if !(rh > 0 && rh <= 100) {
		return HeatingResult{}, fmt.Errorf("heating to %g %%: %w", rh, humidair.ErrInvalidArgument)
	}
	rhIn, err := inlet.RelativeHumidity()
	if err != nil {
		return HeatingResult{}, err
	}
	if rh == rhIn {
		return HeatingResult{Outlet: inlet}, nil
	}
	if rh > rhIn {
		return HeatingResult{}, fmt.Errorf("heating cannot raise relative humidity from %g to %g %%: %w",
			rhIn, rh, humidair.ErrInvalidArgument)
	}

	ta, err := humidair.DryBulbTemperatureXRH(inlet.HumidityRatio, rh, inlet.Pressure)
	if err != nil {
		return HeatingResult{}, err
	}
	return sensibleToTemperature(inlet, ta)
}

// exchangeHeat applies q at constant humidity ratio: m*i2 = m*i1 + q.
func exchangeHeat(inlet humidair.Flow, q float64) (HeatingResult, error) {
	mda := inlet.DryAirMassFlow()
	if q == 0 || mda == 0 {
		return HeatingResult{Outlet: inlet}, nil
	}

	i1, err := inlet.SpecificEnthalpy()
	if err != nil {
		return HeatingResult{}, err
	}
	i2 := i1 + q/1000/mda

	ta, err := humidair.DryBulbTemperatureIX(i2, inlet.HumidityRatio, inlet.Pressure)
	if err != nil {
		return HeatingResult{}, err
	}
	outlet, err := outletAt(inlet, ta)
	if err != nil {
		return HeatingResult{}, err
	}

	return HeatingResult{Outlet: outlet, HeatOfProcess: q}, nil
}

// sensibleToTemperature moves the inlet to ta at constant humidity ratio.
func sensibleToTemperature(inlet humidair.Flow, ta float64) (HeatingResult, error) {
	if ta == inlet.Temperature {
		return HeatingResult{Outlet: inlet}, nil
	}

	i1, err := inlet.SpecificEnthalpy()
	if err != nil {
		return HeatingResult{}, err
	}
	outlet, err := outletAt(inlet, ta)
	if err != nil {
		return HeatingResult{}, err
	}
	i2, err := outlet.SpecificEnthalpy()
	if err != nil {
		return HeatingResult{}, err
	}

	return HeatingResult{
		Outlet:        outlet,
		HeatOfProcess: inlet.DryAirMassFlow() * (i2 - i1) * 1000,
	}, nil
}

// outletAt is the inlet flow brought to ta with its dry air and water unchanged.
func outletAt(inlet humidair.Flow, ta float64) (humidair.Flow, error) {
	air, err := inlet.WithTemperature(ta)
	if err != nil {
		return humidair.Flow{}, err
	}
	return inlet.WithAir(air)
}
