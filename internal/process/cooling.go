package process

import (
	"fmt"

	"moist_air_calc/internal/humidair"
	"moist_air_calc/internal/liquidwater"
	"moist_air_calc/internal/solver"
)

// maxCoilOutletRH is the highest outlet relative humidity a finite coil
// reaches, %.
const maxCoilOutletRH = 99.0

/*
DryCoolingForInputHeat calculates the outlet of a sensible cooler that takes
the given heat away from the air.

	Args:
	    inlet: inlet flow
	    q: heat of process, W, q <= 0

	Returns:
	    outlet flow, heat of process, condensate (always zero) and a
	    bypass factor of zero

	Notes:
	    The model ignores condensation. Results below the inlet dew point
	    are refused. Use with caution.
*/
func DryCoolingForInputHeat(inlet humidair.Flow, q float64) (CoolingResult, error) {
	if q > 0 {
		return CoolingResult{}, fmt.Errorf("cooling with %g W: %w", q, humidair.ErrInvalidArgument)
	}
	h, err := exchangeHeat(inlet, q)
	if err != nil {
		return CoolingResult{}, err
	}
	if err := aboveDewPoint(inlet, h.Outlet.Temperature); err != nil {
		return CoolingResult{}, err
	}
	return dryResult(h), nil
}

/*
DryCoolingForTargetTemperature calculates the heat a sensible cooler takes
away to reach the target temperature.

	Args:
	    inlet: inlet flow
	    ta: outlet dry bulb temperature, degree C, between the inlet dew point
	        and the inlet temperature

	Returns:
	    outlet flow, heat of process, condensate (always zero) and a
	    bypass factor of zero
*/
func DryCoolingForTargetTemperature(inlet humidair.Flow, ta float64) (CoolingResult, error) {
	if ta > inlet.Temperature {
		return CoolingResult{}, fmt.Errorf("cooling from %g to %g degree C: %w",
			inlet.Temperature, ta, humidair.ErrInvalidArgument)
	}
	if err := aboveDewPoint(inlet, ta); err != nil {
		return CoolingResult{}, err
	}
	h, err := sensibleToTemperature(inlet, ta)
	if err != nil {
		return CoolingResult{}, err
	}
	return dryResult(h), nil
}

func aboveDewPoint(inlet humidair.Flow, ta float64) error {
	if ta == inlet.Temperature {
		return nil
	}
	tdp, err := inlet.DewPoint()
	if err != nil {
		return err
	}
	if ta < tdp {
		return fmt.Errorf("dry cooling to %g degree C, below the dew point %g degree C: %w",
			ta, tdp, humidair.ErrPhysicallyImpossible)
	}
	return nil
}

func dryResult(h HeatingResult) CoolingResult {
	return CoolingResult{
		Outlet:        h.Outlet,
		HeatOfProcess: h.HeatOfProcess,
		Condensate:    liquidwater.Flow{Temperature: h.Outlet.Temperature},
	}
}

/*
CoolingForTargetTemperature calculates a cooling coil that brings the inlet
down to the target temperature.

	Args:
	    inlet: inlet flow
	    coolant: coolant of the coil
	    ta: outlet dry bulb temperature, degree C, between the coil wall
	        temperature and the inlet temperature

	Returns:
	    outlet flow, heat of process, condensate and bypass factor
*/
func CoolingForTargetTemperature(inlet humidair.Flow, coolant Coolant, ta float64) (CoolingResult, error) {
	if ta > inlet.Temperature {
		return CoolingResult{}, fmt.Errorf("cooling from %g to %g degree C: %w",
			inlet.Temperature, ta, humidair.ErrInvalidArgument)
	}
	if ta == inlet.Temperature {
		return unchanged(inlet, ta), nil
	}

	c, err := newCoil(inlet, coolant)
	if err != nil {
		return CoolingResult{}, err
	}
	if ta < c.tWall {
		return CoolingResult{}, fmt.Errorf("coil outlet %g degree C below the wall temperature %g degree C: %w",
			ta, c.tWall, humidair.ErrPhysicallyImpossible)
	}
	return c.result(ta)
}

/*
CoolingForTargetRH calculates a cooling coil that raises the relative
humidity of the inlet to the target value.

	Args:
	    inlet: inlet flow
	    coolant: coolant of the coil
	    rh: outlet relative humidity, %, between the inlet relative humidity
	        and 99

	Returns:
	    outlet flow, heat of process, condensate and bypass factor

	Notes:
	    The outlet temperature is searched between the inlet temperature and
	    the inlet dew point, never below the coil wall temperature.
*/
func CoolingForTargetRH(inlet humidair.Flow, coolant Coolant, rh float64) (CoolingResult, error) {
	if !(rh >= 0 && rh <= 100) {
		return CoolingResult{}, fmt.Errorf("cooling to %g %%: %w", rh, humidair.ErrInvalidArgument)
	}
	rhIn, err := inlet.RelativeHumidity()
	if err != nil {
		return CoolingResult{}, err
	}
	if rh < rhIn {
		return CoolingResult{}, fmt.Errorf("cooling cannot lower relative humidity from %g to %g %%: %w",
			rhIn, rh, humidair.ErrInvalidArgument)
	}
	if rh == rhIn {
		return unchanged(inlet, inlet.Temperature), nil
	}
	if rh > maxCoilOutletRH {
		return CoolingResult{}, fmt.Errorf("outlet %g %% needs an infinite exchanger area: %w",
			rh, humidair.ErrPhysicallyImpossible)
	}
	if inlet.MassFlow == 0 {
		return unchanged(inlet, inlet.Temperature), nil
	}

	c, err := newCoil(inlet, coolant)
	if err != nil {
		return CoolingResult{}, err
	}
	if err := c.requireCooling(); err != nil {
		return CoolingResult{}, err
	}

	residual := func(ta float64) (float64, error) {
		_, _, _, x := c.balance(ta)
		rhOut, err := humidair.RelativeHumidity(ta, x, c.pat)
		if err != nil {
			return 0, err
		}
		return rh - rhOut, nil
	}
	if r, err := residual(c.tWall); err != nil {
		return CoolingResult{}, err
	} else if r > 0 {
		return CoolingResult{}, fmt.Errorf("coil with wall at %g degree C cannot reach %g %%: %w",
			c.tWall, rh, humidair.ErrPhysicallyImpossible)
	}

	s := solver.New("coil outlet for RH", solver.WithBounds(c.tWall, c.tIn))
	ta, err := s.FindRoot(residual, c.tIn, c.tdpIn)
	if err != nil {
		return CoolingResult{}, fmt.Errorf("cooling to %g %%: %w", rh, err)
	}
	return c.result(ta)
}

/*
CoolingForInputHeat calculates a cooling coil that takes the given heat away
from the air.

	Args:
	    inlet: inlet flow
	    coolant: coolant of the coil
	    q: heat of process, W, q <= 0

	Returns:
	    outlet flow, heat of process, condensate and bypass factor

	Notes:
	    The search starts between the inlet temperature and the outlet of a
	    dry cooler with the same heat. Part of the heat condenses water, so
	    the coil outlet is always warmer than that.
*/
func CoolingForInputHeat(inlet humidair.Flow, coolant Coolant, q float64) (CoolingResult, error) {
	if q > 0 {
		return CoolingResult{}, fmt.Errorf("cooling with %g W: %w", q, humidair.ErrInvalidArgument)
	}
	if q == 0 || inlet.MassFlow == 0 {
		return unchanged(inlet, inlet.Temperature), nil
	}

	c, err := newCoil(inlet, coolant)
	if err != nil {
		return CoolingResult{}, err
	}
	if err := c.requireCooling(); err != nil {
		return CoolingResult{}, err
	}
	if _, _, qMax, _ := c.balance(c.tWall); q < qMax {
		return CoolingResult{}, fmt.Errorf("%g W exceeds the coil capacity of %g W: %w",
			q, qMax, humidair.ErrPhysicallyImpossible)
	}

	dry, err := exchangeHeat(inlet, q)
	if err != nil {
		return CoolingResult{}, err
	}

	s := solver.New("coil outlet for heat", solver.WithBounds(c.tWall, c.tIn))
	ta, err := s.FindRoot(func(ta float64) (float64, error) {
		_, _, qt, _ := c.balance(ta)
		return qt - q, nil
	}, c.tIn, dry.Outlet.Temperature)
	if err != nil {
		return CoolingResult{}, fmt.Errorf("cooling with %g W: %w", q, err)
	}
	return c.result(ta)
}

/*
BypassFactor calculates the share of the air passing a coil without touching
its surface.

	Args:
	    tWall: average coil wall temperature, degree C
	    tIn: inlet temperature, degree C
	    tOut: outlet temperature, degree C

	Returns:
	    bypass factor, -
*/
func BypassFactor(tWall, tIn, tOut float64) (float64, error) {
	if tIn == tWall {
		return 0, fmt.Errorf("inlet equals wall temperature %g degree C: %w", tWall, humidair.ErrInvalidArgument)
	}
	return (tOut - tWall) / (tIn - tWall), nil
}

/*
CondensateDischarge calculates the water condensed when air dries from x1
to x2.

	Args:
	    mda: dry air mass flow, kg/s
	    x1: inlet humidity ratio, kg/kg(DA)
	    x2: outlet humidity ratio, kg/kg(DA), x2 <= x1

	Returns:
	    condensate mass flow, kg/s
*/
func CondensateDischarge(mda, x1, x2 float64) (float64, error) {
	if mda < 0 || x1 < 0 || x2 < 0 || x2 > x1 {
		return 0, fmt.Errorf("condensate of %g kg/s drying from %g to %g: %w",
			mda, x1, x2, humidair.ErrInvalidArgument)
	}
	return condensate(mda, x1, x2), nil
}

func condensate(mda, x1, x2 float64) float64 {
	if x1 == 0 {
		return 0
	}
	return mda * (x1 - x2)
}

// unchanged is a cooling process that does nothing.
func unchanged(inlet humidair.Flow, ta float64) CoolingResult {
	return CoolingResult{
		Outlet:       inlet,
		Condensate:   liquidwater.Flow{Temperature: ta},
		BypassFactor: 1,
	}
}

// coil is the bypass factor model of a cooling coil. The near wall state
// only depends on the inlet and the coolant, so a balance at a candidate
// outlet temperature is plain arithmetic.
type coil struct {
	inlet humidair.Flow

	pat   float64
	mda   float64
	tIn   float64
	xIn   float64
	iIn   float64
	tdpIn float64

	tWall float64
	xWall float64
	iWall float64
	// enthalpy of the condensate leaving at the wall temperature
	iCond      float64
	condensing bool
}

func newCoil(inlet humidair.Flow, coolant Coolant) (*coil, error) {
	c := &coil{
		inlet: inlet,
		pat:   inlet.Pressure,
		mda:   inlet.DryAirMassFlow(),
		tIn:   inlet.Temperature,
		xIn:   inlet.HumidityRatio,
		tWall: coolant.AverageWallTemperature(),
	}

	var err error
	if c.iIn, err = inlet.SpecificEnthalpy(); err != nil {
		return nil, err
	}
	if c.tdpIn, err = inlet.DewPoint(); err != nil {
		return nil, err
	}

	c.condensing = c.tWall < c.tdpIn
	c.xWall = c.xIn
	if c.condensing {
		ps, err := humidair.SaturationPressure(c.tWall)
		if err != nil {
			return nil, err
		}
		c.xWall = humidair.MaxHumidityRatio(ps, c.pat)
	}
	if c.iWall, err = humidair.SpecificEnthalpy(c.tWall, c.xWall, c.pat); err != nil {
		return nil, err
	}
	c.iCond = liquidwater.SpecificEnthalpy(c.tWall)

	return c, nil
}

func (c *coil) requireCooling() error {
	if c.tWall >= c.tIn {
		return fmt.Errorf("coil wall %g degree C is not colder than the inlet %g degree C: %w",
			c.tWall, c.tIn, humidair.ErrPhysicallyImpossible)
	}
	return nil
}

/*
balance evaluates the coil at an outlet temperature.

	Args:
	    tOut: outlet dry bulb temperature, degree C

	Returns:
	    bypass factor, condensate mass flow (kg/s), heat of process (W) and
	    outlet humidity ratio (kg/kg(DA))

	Notes:
	    The direct contact part (1 - BF) of the dry air leaves at the wall
	    state, the rest bypasses. The condensate carries its enthalpy away.
*/
func (c *coil) balance(tOut float64) (bf, mCond, q, xOut float64) {
	bf = (tOut - c.tWall) / (c.tIn - c.tWall)
	mDirect := (1 - bf) * c.mda
	mBypass := c.mda - mDirect

	if c.condensing {
		mCond = condensate(mDirect, c.xIn, c.xWall)
	}
	q = (mDirect*(c.iWall-c.iIn) + mCond*c.iCond) * 1000
	xOut = (c.xWall*mDirect + c.xIn*mBypass) / c.mda
	return bf, mCond, q, xOut
}

func (c *coil) result(tOut float64) (CoolingResult, error) {
	if c.mda == 0 {
		return unchanged(c.inlet, c.tIn), nil
	}
	if err := c.requireCooling(); err != nil {
		return CoolingResult{}, err
	}

	bf, mCond, q, xOut := c.balance(tOut)
	air, err := humidair.NewAir(c.pat, tOut, xOut)
	if err != nil {
		return CoolingResult{}, err
	}
	outlet, err := humidair.NewFlowOfDryAir(air, c.mda)
	if err != nil {
		return CoolingResult{}, err
	}

	return CoolingResult{
		Outlet:        outlet,
		HeatOfProcess: q,
		Condensate:    liquidwater.Flow{Temperature: c.tWall, MassFlow: mCond},
		BypassFactor:  bf,
	}, nil
}
